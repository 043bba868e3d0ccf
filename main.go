package main

import (
	"context"
	"net/http"
	"slices"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yashsinha880/Pointify/game"
	"github.com/yashsinha880/Pointify/shared/configs"
	"github.com/yashsinha880/Pointify/shared/logger"
)

func CreateServer(allowedOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// registered before the origin filter so probes need no Origin header
	r.GET("/healthz", func(ctx *gin.Context) { ctx.String(http.StatusOK, "ok") })

	r.Use(func(ctx *gin.Context) {
		origin := ctx.Request.Header.Get("Origin")
		if origin == "" || slices.Contains(allowedOrigins, origin) {
			ctx.Next()
			return
		}
		ctx.String(http.StatusForbidden, "forbidden origin")
		ctx.Abort()
	})

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowCredentials: true,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{
			"Content-Type",
			"Upgrade",
			"Connection",
			"Sec-WebSocket-Key",
			"Sec-WebSocket-Version",
			"Sec-WebSocket-Extensions",
			"Sec-WebSocket-Protocol",
		},
	}))

	return r
}

func allowedOrigins() []string {
	if configs.Envs.ALLOWED_ORIGINS != "" {
		return strings.Split(configs.Envs.ALLOWED_ORIGINS, ",")
	}
	if configs.Envs.GIN_MODE == "release" {
		return []string{
			"https://" + configs.Envs.FRONTEND_ORIGIN,
			"https://www." + configs.Envs.FRONTEND_ORIGIN,
		}
	}
	return []string{"http://" + configs.Envs.FRONTEND_ORIGIN}
}

func main() {
	if configs.Envs.GIN_MODE == "release" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		logger.SetDebug()
	}

	origins := allowedOrigins()

	tickerGen := game.NewTickerGen()
	room := game.NewRoom(&tickerGen)

	started := make(chan struct{})
	go room.RoomActor(context.Background(), started)
	<-started

	roomHandler := game.NewRoomHandler(room, origins)

	r := CreateServer(origins)
	r.GET("/ws", roomHandler.ConnectHandler)

	port := configs.Envs.PORT
	if port == "" {
		port = "3001"
	}
	logger.Infof("pointify listening on :%s", port)
	if err := r.Run(":" + port); err != nil {
		logger.Fatalf("couldn't start server: %v", err)
	}
}

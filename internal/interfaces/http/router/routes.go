// Package router 提供 HTTP 路由配置
package router

import (
	"pitchcraft-ai-api/internal/interfaces/http/handler"

	"github.com/gin-gonic/gin"
)

// RegisterV1Routes 注册 v1 版本路由
func RegisterV1Routes(
	v1 *gin.RouterGroup,
	authHandler *handler.AuthHandler,
	pitchHandler *handler.PitchHandler,
	industryHandler *handler.IndustryHandler,
	draftHandler *handler.DraftHandler,
) {
	// 认证管理
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.RefreshToken)
		auth.POST("/logout", authHandler.Logout)
	}

	// 路演稿管理
	pitches := v1.Group("/pitches")
	{
		pitches.POST("/generate", pitchHandler.Generate)
		pitches.GET("", pitchHandler.List)
		pitches.PUT("/:id", pitchHandler.Update)
		pitches.POST("/feedback", pitchHandler.CreateFeedback)
		pitches.GET("/:id/feedback", pitchHandler.ListFeedback)
	}

	// 行业管理
	industries := v1.Group("/industries")
	{
		industries.GET("", industryHandler.List)
		industries.POST("", industryHandler.Create)
	}

	// 表单草稿
	drafts := v1.Group("/drafts")
	{
		drafts.GET("", draftHandler.Get)
		drafts.PUT("", draftHandler.Save)
		drafts.DELETE("", draftHandler.Delete)
		drafts.POST("/validate", draftHandler.Validate)
		drafts.POST("/spin", draftHandler.Spin)
	}
}

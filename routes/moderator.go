package routes

import (
	"agorahub/controllers"

	"github.com/gin-gonic/gin"
)

// SetupModeratorRoutes registers the moderator operation surface on an
// already password-gated route group.
func SetupModeratorRoutes(rg *gin.RouterGroup, mc *controllers.ModeratorController) {
	rg.POST("/debates", mc.CreateDebateHandler)
	rg.GET("/debates", mc.ListDebatesHandler)
	rg.DELETE("/debates/:debateID", mc.RemoveDebateHandler)
	rg.POST("/debates/:debateID/questions", mc.PublishQuestionHandler)
	rg.GET("/debates/:debateID/suggestions", mc.ListSuggestionsHandler)
	rg.POST("/debates/:debateID/suggestions/:suggestionID/approve", mc.ApproveSuggestionHandler)
}

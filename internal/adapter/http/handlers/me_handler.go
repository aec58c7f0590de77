package handlers

import (
	"net/http"

	response "propostas_api/internal/adapter/http/dto/response"

	"github.com/gin-gonic/gin"
)

// Me godoc
// @Summary  Current session identity
// @Tags     session
// @Produce  json
// @Success  200 {object} response.MeResponse
// @Failure  401 {object} pkg.HTTPError
// @Router   /me [get]
func Me(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		writeError(c, errUnauthenticated)
		return
	}
	c.JSON(http.StatusOK, response.FromSession(session))
}

package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"

	"github.com/Sh4dowyy/podoloog-sub000/utils"
)

// Санитайзеры HTML: strict для пользовательского текста (отзывы),
// ugc для HTML-контента статей из админки.
var (
	strictPolicy = bluemonday.StrictPolicy()
	ugcPolicy    = bluemonday.UGCPolicy()
)

// getLang читает язык из заголовка Lang: "et" либо "ru", по умолчанию эстонский.
func getLang(c *gin.Context) string {
	return utils.NormalizeLang(c.GetHeader("Lang"))
}

// parseID разбирает :id из пути; при мусоре отвечает 400 и возвращает false.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

// fail отвечает ошибкой в стандартном конверте.
func fail(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"success": false, "error": msg})
}

// failErr мапит ошибку приложения в HTTP-статус.
func failErr(c *gin.Context, err error, msg string) {
	if msg == "" {
		msg = err.Error()
	}
	fail(c, utils.HTTPStatus(err), msg)
}

// ok отвечает успешным конвертом.
func ok(c *gin.Context, result interface{}) {
	c.JSON(http.StatusOK, gin.H{"success": true, "result": result})
}

func created(c *gin.Context, result interface{}) {
	c.JSON(http.StatusCreated, gin.H{"success": true, "result": result})
}

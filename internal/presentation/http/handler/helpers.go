package handler

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ncastro/lavanderia-panel/internal/presentation/web"
)

// basePage builds the PageData shared by every view, picking up flash
// messages carried across the POST-redirect-GET cycle as query params.
func basePage(c *gin.Context, title, active string) web.PageData {
	return web.PageData{
		Title:  title,
		Active: active,
		Msg:    c.Query("msg"),
		Err:    c.Query("err"),
	}
}

// redirectFlash redirects to path with msg/err flash query params. The
// path may already carry a query string of its own.
func redirectFlash(c *gin.Context, path string, params url.Values) {
	if encoded := params.Encode(); encoded != "" {
		sep := "?"
		if strings.Contains(path, "?") {
			sep = "&"
		}
		path = path + sep + encoded
	}
	c.Redirect(http.StatusSeeOther, path)
}

// flashParams builds flash query params, dropping empty values.
func flashParams(msg, errMsg string) url.Values {
	params := url.Values{}
	if msg != "" {
		params.Set("msg", msg)
	}
	if errMsg != "" {
		params.Set("err", errMsg)
	}
	return params
}

// paramID parses the :id path parameter.
func paramID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

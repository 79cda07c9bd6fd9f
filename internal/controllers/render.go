package controllers

import (
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// renderer writes JSON bodies either compact or indented
type renderer struct {
	indent bool
}

func (r renderer) json(ctx *gin.Context, code int, obj any) {
	if r.indent {
		ctx.IndentedJSON(code, obj)
		return
	}
	ctx.JSON(code, obj)
}

// parseID reads a positive integer path parameter
func parseID(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

var registerTagNames sync.Once

// UseJSONFieldNames makes gin's validator report fields by their json name
func UseJSONFieldNames() {
	registerTagNames.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
}

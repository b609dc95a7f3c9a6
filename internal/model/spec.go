package model

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	ErrEmptyVideoURL   = errors.New("请输入 YouTube 视频链接")
	ErrInvalidVideoURL = errors.New("请输入有效的 YouTube 视频链接")
	ErrInvalidSpec     = errors.New("摘要参数无效")
)

// SummarySpec 生成或重新生成摘要的参数
type SummarySpec struct {
	VideoURL string        `json:"videoUrl" validate:"required,youtube"`
	Type     SummaryType   `json:"summaryType" validate:"required,summarytype"`
	Length   SummaryLength `json:"summaryLength" validate:"required,summarylength"`
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func specValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		_ = v.RegisterValidation("youtube", func(fl validator.FieldLevel) bool {
			return IsValidYouTubeURL(fl.Field().String())
		})
		_ = v.RegisterValidation("summarytype", func(fl validator.FieldLevel) bool {
			return SummaryType(fl.Field().String()).IsValid()
		})
		_ = v.RegisterValidation("summarylength", func(fl validator.FieldLevel) bool {
			return SummaryLength(fl.Field().String()).IsValid()
		})
		validate = v
	})
	return validate
}

// Validate 校验全部字段，视频链接错误优先返回对应的哨兵错误
func (s SummarySpec) Validate() error {
	err := specValidator().Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidSpec, err)
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Field() == "VideoURL" {
			if fe.Tag() == "required" {
				return ErrEmptyVideoURL
			}
			return ErrInvalidVideoURL
		}
		fields = append(fields, fmt.Sprintf("%s(%v)", fe.Field(), fe.Value()))
	}
	return fmt.Errorf("%w: %s", ErrInvalidSpec, strings.Join(fields, ", "))
}

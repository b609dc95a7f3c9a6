package history

import (
	"strings"

	"github.com/fachebot/vid-summify/internal/model"
	"github.com/lightningnetwork/lnd/fn/v2"
)

// Filter 历史列表的搜索与筛选条件
type Filter struct {
	Query  string
	Type   fn.Option[model.SummaryType]
	Length fn.Option[model.SummaryLength]
}

func NewFilter() Filter {
	return Filter{
		Type:   fn.None[model.SummaryType](),
		Length: fn.None[model.SummaryLength](),
	}
}

// ToggleType 再次选择同一类型时取消筛选
func (f *Filter) ToggleType(t model.SummaryType) {
	if f.Type.UnwrapOr("") == t {
		f.Type = fn.None[model.SummaryType]()
		return
	}
	f.Type = fn.Some(t)
}

// ToggleLength 再次选择同一长度时取消筛选
func (f *Filter) ToggleLength(l model.SummaryLength) {
	if f.Length.UnwrapOr("") == l {
		f.Length = fn.None[model.SummaryLength]()
		return
	}
	f.Length = fn.Some(l)
}

// Clear 清除全部条件
func (f *Filter) Clear() {
	*f = NewFilter()
}

// Active 是否设置了任一条件
func (f Filter) Active() bool {
	return f.Query != "" || f.Type.IsSome() || f.Length.IsSome()
}

// Match 判断单条摘要是否满足条件，搜索忽略大小写并匹配标题、正文和链接
func (f Filter) Match(s model.Summary) bool {
	if f.Query != "" {
		query := strings.ToLower(f.Query)
		title := ""
		if s.Title != nil {
			title = *s.Title
		}
		if !strings.Contains(strings.ToLower(title), query) &&
			!strings.Contains(strings.ToLower(s.Text), query) &&
			!strings.Contains(strings.ToLower(s.VideoURL), query) {
			return false
		}
	}

	if t, ok := optionValue(f.Type); ok && s.Type != t {
		return false
	}
	if l, ok := optionValue(f.Length); ok && s.Length != l {
		return false
	}
	return true
}

// Apply 返回满足条件的摘要，保持原有顺序
func (f Filter) Apply(items []model.Summary) []model.Summary {
	result := make([]model.Summary, 0, len(items))
	for _, item := range items {
		if f.Match(item) {
			result = append(result, item)
		}
	}
	return result
}

// EmptyMessage 列表为空时的提示
func (f Filter) EmptyMessage() string {
	if f.Active() {
		return "No summaries match your filters"
	}
	return "No summaries yet"
}

func optionValue[T any](o fn.Option[T]) (T, bool) {
	var zero T
	if o.IsNone() {
		return zero, false
	}
	return o.UnwrapOr(zero), true
}

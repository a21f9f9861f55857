package style

import (
	"io"
	"path/filepath"
	"sync"

	"github.com/yeisme/vivid/pkg/highlight"
	"github.com/yeisme/vivid/pkg/theme"
)

var (
	codeMu      sync.RWMutex
	codeVariant = theme.Dark
	resolvers   sync.Map // theme.Variant -> *theme.Resolver
)

// SetCodeVariant 设置 PrintCode 使用的主题变体
func SetCodeVariant(v theme.Variant) {
	codeMu.Lock()
	defer codeMu.Unlock()
	codeVariant = v
}

func codeResolver() (*theme.Resolver, error) {
	codeMu.RLock()
	v := codeVariant
	codeMu.RUnlock()
	if r, ok := resolvers.Load(v); ok {
		return r.(*theme.Resolver), nil
	}
	t, err := theme.Builtin(v)
	if err != nil {
		return nil, err
	}
	r, err := theme.NewResolver(t)
	if err != nil {
		return nil, err
	}
	actual, _ := resolvers.LoadOrStore(v, r)
	return actual.(*theme.Resolver), nil
}

// PrintCode 用内置主题高亮 src 并写入 w，语言由 filename 的扩展名决定
// color 为 false 时原样输出
func PrintCode(w io.Writer, filename, src string, color bool) error {
	if !color {
		_, err := io.WriteString(w, src)
		return err
	}
	r, err := codeResolver()
	if err != nil {
		return err
	}
	tokens, err := highlight.Tokenize(filepath.Base(filename), src)
	if err != nil {
		// 无法分词时退回纯文本
		_, werr := io.WriteString(w, src)
		return werr
	}
	return highlight.Render(w, tokens, r, highlight.RenderOptions{})
}

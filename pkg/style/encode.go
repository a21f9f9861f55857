package style

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// normalize 将 string / []byte 视为原始文档，用 unmarshal 解析成通用值；其他值原样返回
func normalize(v any, unmarshal func([]byte, any) error) (any, bool, error) {
	var src []byte
	switch x := v.(type) {
	case string:
		src = []byte(strings.TrimSpace(x))
	case []byte:
		src = bytes.TrimSpace(x)
	default:
		return v, true, nil
	}
	if len(src) == 0 {
		return nil, false, nil
	}
	var obj any
	if err := unmarshal(src, &obj); err != nil {
		return nil, false, err
	}
	return obj, true, nil
}

func withNewline(b []byte) string {
	if len(b) == 0 || b[len(b)-1] != '\n' {
		b = append(b, '\n')
	}
	return string(b)
}

// FormatJSON 返回缩进后的 JSON 字符串，不转义 HTML 字符
//
// 入参支持:
//   - string / []byte: 视为原始 JSON 文本，校验后重新缩进
//   - 其他任意 Go 值: 直接编码
func FormatJSON(v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return "null\n", nil
	case string, []byte:
		var raw []byte
		if s, ok := x.(string); ok {
			raw = []byte(s)
		} else {
			raw = x.([]byte)
		}
		raw = bytes.TrimSpace(raw)
		if len(raw) == 0 {
			return "null\n", nil
		}
		var out bytes.Buffer
		if err := json.Indent(&out, raw, "", "  "); err != nil {
			return "", err
		}
		return withNewline(out.Bytes()), nil
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// FormatYAML 返回两空格缩进的 YAML 字符串
func FormatYAML(v any) (string, error) {
	obj, ok, err := normalize(v, yaml.Unmarshal)
	if err != nil {
		return "", err
	}
	if !ok || obj == nil {
		return "null\n", nil
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(obj); err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	return withNewline(buf.Bytes()), nil
}

// FormatTOML 返回 TOML 字符串；TOML 没有 null，空值输出空行
// 顶层为切片时包装成 items 数组表
func FormatTOML(v any) (string, error) {
	obj, ok, err := normalize(v, toml.Unmarshal)
	if err != nil {
		return "", err
	}
	if !ok || obj == nil {
		return "\n", nil
	}
	if k := reflect.ValueOf(obj).Kind(); k == reflect.Slice || k == reflect.Array {
		obj = map[string]any{"items": obj}
	}
	b, err := toml.Marshal(obj)
	if err != nil {
		return "", err
	}
	return withNewline(b), nil
}

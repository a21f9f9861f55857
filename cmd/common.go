package cmd

import (
	"fmt"
	"strings"

	"github.com/yeisme/vivid/pkg/theme"
)

// selectVariants 解析 --variant：空值取配置中的默认变体，"all" 取全部已注册变体
func selectVariants(reg *theme.Registry, flag string) ([]theme.Variant, error) {
	switch strings.ToLower(strings.TrimSpace(flag)) {
	case "":
		return []theme.Variant{vividCtx.Config.Theme.Variant()}, nil
	case "all", "both":
		return reg.Variants(), nil
	}
	var out []theme.Variant
	for _, part := range strings.Split(flag, ",") {
		v, err := theme.ParseVariant(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// resolversFor 返回所选变体的解析器
func resolversFor(reg *theme.Registry, variants []theme.Variant) ([]*theme.Resolver, error) {
	out := make([]*theme.Resolver, 0, len(variants))
	for _, v := range variants {
		r, err := reg.Resolver(v)
		if err != nil {
			return nil, fmt.Errorf("variant %s: %w", v, err)
		}
		out = append(out, r)
	}
	return out, nil
}

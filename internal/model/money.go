package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// ErrBadFee 费用字符串无法解析或为负数
var ErrBadFee = errors.New("费用金额无效")

// Fee 非负货币金额。表单提交的费用字符串（可带 $、逗号、空格）
// 解析为精确小数，文档内渲染为 "$ 40,000" 形式。
type Fee struct {
	dec decimal.Decimal
}

// NewFee 以整美元金额构造费用
func NewFee(dollars int64) Fee {
	return Fee{dec: decimal.NewFromInt(dollars)}
}

// ParseFee 解析表单费用字符串
func ParseFee(s string) (Fee, error) {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.TrimPrefix(cleaned, "$")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.ReplaceAll(cleaned, " ", "")
	if cleaned == "" {
		return Fee{}, fmt.Errorf("%w: 为空", ErrBadFee)
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return Fee{}, fmt.Errorf("%w: %q", ErrBadFee, s)
	}
	if d.IsNegative() {
		return Fee{}, fmt.Errorf("%w: %q 为负数", ErrBadFee, s)
	}
	return Fee{dec: d}, nil
}

// Add 金额相加
func (f Fee) Add(other Fee) Fee {
	return Fee{dec: f.dec.Add(other.dec)}
}

// IsZero 金额是否为零
func (f Fee) IsZero() bool {
	return f.dec.IsZero()
}

// Decimal 返回底层精确小数
func (f Fee) Decimal() decimal.Decimal {
	return f.dec
}

// Format 渲染为带千分位的 "$ 40,000" 形式
func (f Fee) Format() string {
	return "$ " + humanize.Comma(f.dec.IntPart())
}

// String 实现 fmt.Stringer
func (f Fee) String() string {
	return f.dec.String()
}

// MarshalJSON 序列化为数字字符串
func (f Fee) MarshalJSON() ([]byte, error) {
	return []byte(`"` + f.dec.String() + `"`), nil
}

// UnmarshalJSON 从数字字符串反序列化
func (f *Fee) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	parsed, err := ParseFee(s)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

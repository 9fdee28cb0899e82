package numeral_test

import (
	"errors"
	"fmt"

	"cn-nm/numeral"
	"cn-nm/options"
)

func Example() {
	fmt.Println(numeral.ToText(10001))
	fmt.Println(numeral.ToText(1020000))
	fmt.Println(numeral.ToText("10.25"))
	fmt.Println(numeral.ToMoneyText(100))
	fmt.Println(numeral.ToMoneyText(1.05))
	fmt.Println(numeral.ToNumber("壹亿贰仟叁佰肆拾伍万陆仟柒佰捌拾玖"))
	// Output:
	// 壹万零壹
	// 壹佰零贰万
	// 壹拾点贰伍
	// 壹佰元整
	// 壹元零伍分
	// 1.23456789e+08
}

func ExampleParseNumber() {
	v, err := numeral.ParseNumber("零")
	fmt.Println(v, err)

	_, err = numeral.ParseNumber("壹万拾")
	fmt.Println(errors.Is(err, numeral.ErrInvalidText))
	// Output:
	// 0 <nil>
	// true
}

func ExampleNew() {
	c := numeral.New(numeral.WithFlags(options.FlagSigned))

	text, _ := c.FormatText(-42)
	fmt.Println(text)

	v, _ := c.ParseNumber(text)
	fmt.Println(v)
	// Output:
	// 负肆拾贰
	// -42
}

func ExampleExplain() {
	for _, d := range numeral.Explain("壹万万") {
		fmt.Println(d.Code)
	}
	// Output:
	// repeated_glyph
	// duplicate_large_unit
	// large_unit_order
}

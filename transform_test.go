package opencc

import (
	"io"
	"strings"
	"testing"

	"golang.org/x/text/transform"
)

func TestTransformerString(t *testing.T) {
	c := testConverter(t, TW2SP)
	got, _, err := transform.String(NewTransformer(c), "涼風有訊")
	if err != nil {
		t.Fatal(err)
	}
	if got != "凉风有讯" {
		t.Fatalf("涼風有訊 should transform to 凉风有讯, is %s", got)
	}
}

func TestTransformerChunkedReader(t *testing.T) {
	c := testConverter(t, S2TWP)
	input := "凉风有讯，秋月无边，亏我思娇的情绪好比度日如年。" +
		"虽然我不是玉树临风，潇洒倜傥，但我有广阔的胸襟，加强劲的臂弯。"
	want := "涼風有訊，秋月無邊，虧我思嬌的情緒好比度日如年。" +
		"雖然我不是玉樹臨風，瀟灑倜儻，但我有廣闊的胸襟，加強勁的臂彎。"

	// Feed the reader in tiny chunks so the transformer has to buffer
	// across calls before converting at EOF.
	r := transform.NewReader(io.MultiReader(
		strings.NewReader(input[:7]),
		strings.NewReader(input[7:20]),
		strings.NewReader(input[20:]),
	), NewTransformer(c))
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != want {
		t.Fatalf("chunked transform mismatch:\ngot  %s\nwant %s", got, want)
	}
}

func TestTransformerReset(t *testing.T) {
	c := testConverter(t, TW2SP)
	tr := NewTransformer(c)
	got, _, err := transform.String(tr, "無")
	if err != nil {
		t.Fatal(err)
	}
	if got != "无" {
		t.Fatalf("無 should transform to 无, is %s", got)
	}
	// transform.String resets the transformer itself; exercise an explicit
	// reuse as well.
	tr.Reset()
	got, _, err = transform.String(tr, "涼風有訊")
	if err != nil {
		t.Fatal(err)
	}
	if got != "凉风有讯" {
		t.Fatalf("transformer reuse after Reset failed, got %s", got)
	}
}

func TestTransformerEmptyInput(t *testing.T) {
	c := testConverter(t, S2T)
	got, _, err := transform.String(NewTransformer(c), "")
	if err != nil {
		t.Fatal(err)
	}
	if got != "" {
		t.Fatalf("empty input should transform to empty output, is %q", got)
	}
}

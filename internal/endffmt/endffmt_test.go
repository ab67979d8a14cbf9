package endffmt

import (
	"strconv"
	"strings"
	"testing"
)

type field struct {
	start int
	text  string
}

func buildLine(fields ...field) string {
	buf := make([]byte, minLineLen)
	for i := range buf {
		buf[i] = ' '
	}
	for _, f := range fields {
		copy(buf[f.start:], f.text)
	}
	return string(buf)
}

func rightAlign(end int, s string) field {
	return field{start: end - len(s), text: s}
}

func matLine(z, a int, metastable bool, mat int) string {
	fields := []field{
		rightAlign(colZEnd, strconv.Itoa(z)),
		rightAlign(colAEnd, strconv.Itoa(a)),
		rightAlign(colMatEnd, strconv.Itoa(mat)),
	}
	if metastable {
		fields = append(fields, field{colMetaFlag, "M"})
	}
	return buildLine(fields...)
}

func TestParseMatList(t *testing.T) {
	input := strings.Join([]string{
		"# ENDF/B neutron sublibrary contents",
		"",
		matLine(1, 1, false, 125),
		matLine(92, 235, false, 9228),
		matLine(95, 242, false, 9546),
		matLine(95, 242, true, 9547),
	}, "\n") + "\n"

	recs, err := Parse(strings.NewReader(input), nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(recs) != 4 {
		t.Fatalf("got %d records, want 4", len(recs))
	}

	tests := []struct {
		z, a       int
		metastable bool
		mat        int
	}{
		{1, 1, false, 125},
		{92, 235, false, 9228},
		{95, 242, false, 9546},
		{95, 242, true, 9547},
	}
	for i, want := range tests {
		got := recs[i]
		if got.Z != want.z || got.A != want.a || got.Metastable != want.metastable || got.Mat != want.mat {
			t.Errorf("record %d = %+v, want %+v", i, got, want)
		}
	}
}

func TestParseMatErrors(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"short", "   1  H-1"},
		{"bad Z", buildLine(rightAlign(colZEnd, "x"), rightAlign(colAEnd, "1"), rightAlign(colMatEnd, "125"))},
		{"bad A", buildLine(rightAlign(colZEnd, "1"), rightAlign(colAEnd, "?"), rightAlign(colMatEnd, "125"))},
		{"missing MAT", buildLine(rightAlign(colZEnd, "1"), rightAlign(colAEnd, "1"))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(strings.NewReader(tt.line+"\n"), nil); err == nil {
				t.Errorf("Parse accepted %q", tt.line)
			}
		})
	}
}

package main

import (
	"bytes"
	"strings"
	"testing"

	"lt24/lcd"
)

func TestFormatHexOmitsUnsentParams(t *testing.T) {
	got := formatHex(lcd.Command{Code: 0x29, Count: 0, Params: []uint16{0x09, 0x0a}})
	if got != "29" {
		t.Fatalf("formatHex = %q", got)
	}
	got = formatHex(lcd.Cmd(0xe8, 0x85, 0x01, 0x0798))
	if got != "e8 85 01 798" {
		t.Fatalf("formatHex = %q", got)
	}
}

func TestFormatCKeepsDeclaredCount(t *testing.T) {
	got := formatC(lcd.Command{Code: 0x11, Count: 0, Params: []uint16{0x09, 0x0a}})
	want := "send_command(0x11, 0, (uint16_t []){ 0x09, 0x0a});"
	if got != want {
		t.Fatalf("formatC = %q, want %q", got, want)
	}
}

func TestPrintDiff(t *testing.T) {
	var buf bytes.Buffer
	if err := printDiff(&buf, "solid,stripes"); err != nil {
		t.Fatalf("printDiff: %v", err)
	}
	out := buf.String()
	if strings.Count(out, "step") != 2 || !strings.Contains(out, "e8 85 01 798") || !strings.Contains(out, "f6 01 10 00") {
		t.Fatalf("diff output:\n%s", out)
	}

	buf.Reset()
	if err := printDiff(&buf, "solid,solid"); err != nil {
		t.Fatalf("printDiff: %v", err)
	}
	if !strings.Contains(buf.String(), "identical") {
		t.Fatalf("diff output:\n%s", buf.String())
	}

	if err := printDiff(&buf, "solid"); err == nil {
		t.Fatal("expected error for a single profile")
	}
}

func TestPrintTableUnknownProfile(t *testing.T) {
	var buf bytes.Buffer
	if err := printTable(&buf, "nope", "hex"); err == nil {
		t.Fatal("expected error")
	}
	if err := printTable(&buf, "solid", "hex"); err != nil {
		t.Fatalf("printTable: %v", err)
	}
	if lines := strings.Count(buf.String(), "\n"); lines != len(lcd.InitSolid) {
		t.Fatalf("printed %d lines, want %d", lines, len(lcd.InitSolid))
	}
}

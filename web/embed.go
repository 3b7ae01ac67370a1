// Package web carries the dashboard's embedded UI assets so the binary is
// self-contained.
package web

import "embed"

// TemplatesFS holds the server-rendered dashboard templates.
//
//go:embed templates/*.html
var TemplatesFS embed.FS

// StaticFS holds the stylesheet and the chart script.
//
//go:embed static/*
var StaticFS embed.FS

// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build ignore

// Help_gen prints help.go, which holds the procalc command's
// documentation as an HTML page. Run it from this directory.
package main

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/doc"
	"go/parser"
	"go/token"
	"log"
	"path/filepath"
	"strings"
)

func main() {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filepath.Join("..", "doc.go"), nil, parser.ParseComments)
	if err != nil {
		log.Fatal(err)
	}
	pkg, err := doc.NewFromFiles(fset, []*ast.File{file}, "procalc.org/procalc")
	if err != nil {
		log.Fatal(err)
	}

	var buf bytes.Buffer
	fmt.Fprintln(&buf, `<!-- auto-generated from procalc.org/procalc package doc -->`)
	fmt.Fprintln(&buf, head)
	fmt.Fprintln(&buf, `<body>`)
	buf.Write(pkg.HTML(pkg.Doc))
	fmt.Fprintln(&buf, `</body></html>`)

	// The page is a raw string literal.
	page := strings.ReplaceAll(buf.String(), "`", `"`)
	fmt.Printf("package mobile\n\n// GENERATED; DO NOT EDIT\nconst help = `%s`\n", page)
}

const head = `<head>
<style>
	body {
		font-family: sans-serif;
		font-size: 11pt;
		line-height: 1.4em;
		max-width: 40em;
		margin: 1em;
	}
	h3 {
		font-size: 12pt;
		border-bottom: 1px solid #ccc;
	}
	pre {
		background: #f4f4f4;
		border-left: 3px solid #3a7bd5;
		font-family: monospace;
		font-size: 10pt;
		overflow: auto;
		padding: 0.5em 1em;
	}
</style>
</head>`

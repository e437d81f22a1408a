package main

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"go/types"
	"text/template"

	"golang.org/x/tools/go/packages"
)

const gamePkgPath = "pdkit/game"

var (
	ErrNotStruct   = errors.New("pdmain can only be attached to a struct type")
	ErrNotDelegate = errors.New("type does not implement game.Delegate")
)

type target struct {
	Package string
	Type    string
}

func load(dir string) (*packages.Package, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedTypes | packages.NeedImports | packages.NeedSyntax,
		Dir:  dir,
	}
	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", dir, err)
	}
	if packages.PrintErrors(pkgs) > 0 {
		return nil, fmt.Errorf("load %s: package has errors", dir)
	}
	if len(pkgs) != 1 {
		return nil, fmt.Errorf("load %s: expected one package, found %d", dir, len(pkgs))
	}
	return pkgs[0], nil
}

// check verifies that name is a struct type whose pointer satisfies the
// Delegate interface imported by pkg.
func check(pkg *types.Package, name string) error {
	if pkg.Path() == gamePkgPath {
		return fmt.Errorf("%s cannot register its own types", gamePkgPath)
	}
	obj := pkg.Scope().Lookup(name)
	if obj == nil {
		return fmt.Errorf("type %s not found in %s", name, pkg.Path())
	}
	tn, ok := obj.(*types.TypeName)
	if !ok {
		return fmt.Errorf("%s: %w", name, ErrNotStruct)
	}
	if _, ok := tn.Type().Underlying().(*types.Struct); !ok {
		return fmt.Errorf("%s: %w", name, ErrNotStruct)
	}

	iface := delegateInterface(pkg)
	if iface == nil {
		return fmt.Errorf("%s does not import %s", pkg.Path(), gamePkgPath)
	}
	if !types.Implements(types.NewPointer(tn.Type()), iface) {
		return fmt.Errorf("*%s: %w", name, ErrNotDelegate)
	}
	return nil
}

func delegateInterface(pkg *types.Package) *types.Interface {
	for _, imp := range pkg.Imports() {
		if imp.Path() != gamePkgPath {
			continue
		}
		obj := imp.Scope().Lookup("Delegate")
		if obj == nil {
			return nil
		}
		iface, _ := obj.Type().Underlying().(*types.Interface)
		return iface
	}
	return nil
}

var tmpl = template.Must(template.New("pdmain").Parse(`// Code generated by pdmain. DO NOT EDIT.

package {{.Package}}

import "` + gamePkgPath + `"

func init() {
	game.Register(func() game.Delegate { return new({{.Type}}) })
}
`))

func render(t target) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, t); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated code: %w", err)
	}
	return src, nil
}

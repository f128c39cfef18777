package analyze

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"path/filepath"
	"reflect"

	"go.uber.org/zap"
	"golang.org/x/tools/go/packages"

	"navroute-generator/internal/diagnostic"
	"navroute-generator/internal/naming"
	"navroute-generator/internal/schema"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo

// Analyzer loads Go packages and collects destination declarations.
type Analyzer struct {
	// Dir is the directory patterns are resolved in; empty means the
	// current directory.
	Dir string

	decls []schema.DestinationDecl
	diags diagnostic.Diagnostics
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// LoadPackages loads the specified packages and collects every annotated
// struct in source order. Patterns are standard Go package patterns
// (e.g., "./screens", "navroute-generator/examples/screens").
//
// Package load errors are returned as an error; problems with individual
// declarations are reported through Diagnostics.
func (a *Analyzer) LoadPackages(patterns ...string) ([]schema.DestinationDecl, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  a.Dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	for _, pkg := range pkgs {
		a.processPackage(pkg)
	}

	return a.decls, nil
}

// Declarations returns the declarations collected so far.
func (a *Analyzer) Declarations() []schema.DestinationDecl {
	return a.decls
}

// Diagnostics returns the problems found while collecting declarations.
func (a *Analyzer) Diagnostics() *diagnostic.Diagnostics {
	return &a.diags
}

// processPackage walks the type declarations of a loaded package.
func (a *Analyzer) processPackage(pkg *packages.Package) {
	Logger().Debug("analyzing package", zap.String("package", pkg.PkgPath), zap.Int("files", len(pkg.Syntax)))

	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok || gen.Tok != token.TYPE {
				continue
			}

			for _, spec := range gen.Specs {
				ts := spec.(*ast.TypeSpec)

				// A lone spec carries its doc comment on the GenDecl.
				var groups []*ast.CommentGroup
				if len(gen.Specs) == 1 {
					groups = append(groups, gen.Doc)
				}

				groups = append(groups, ts.Doc)

				dir, ok := findDirective(groups...)
				if !ok {
					continue
				}

				a.processType(pkg, ts, dir)
			}
		}
	}
}

// processType converts one annotated type into a declaration.
func (a *Analyzer) processType(pkg *packages.Package, ts *ast.TypeSpec, dir *directive) {
	pos := pkg.Fset.Position(ts.Pos())
	source := fmt.Sprintf("%s:%d", filepath.Base(pos.Filename), pos.Line)
	typeName := ts.Name.Name

	decl := schema.DestinationDecl{
		ID:     dir.ID,
		Name:   dir.Name,
		Source: source,
	}
	if decl.ID == "" {
		decl.ID = naming.Snake(typeName)
	}
	if decl.Name == "" {
		decl.Name = typeName
	}

	for _, key := range dir.Unknown {
		a.diags.AddWarning("unknown_directive_key", fmt.Sprintf("unknown directive key %q", key), decl.Label(), "")
	}

	obj := pkg.TypesInfo.Defs[ts.Name]
	if obj == nil {
		a.diags.AddError("type_not_found", fmt.Sprintf("no type information for %s", typeName), decl.Label(), "")
		return
	}

	st, ok := obj.Type().Underlying().(*types.Struct)
	if !ok {
		a.diags.AddError("directive_not_struct", fmt.Sprintf("%s is not a struct type", typeName), decl.Label(), "")
		return
	}

	for i := 0; i < st.NumFields(); i++ {
		field := st.Field(i)
		if !field.Exported() || field.Embedded() {
			continue
		}

		tag := parseFieldTag(reflect.StructTag(st.Tag(i)).Get("nav"))
		if tag.Skip {
			continue
		}

		arg, err := argumentFromField(field, tag)
		if err != nil {
			a.diags.AddError("unsupported_field_type", err.Error(), decl.Label(), field.Name())
			continue
		}

		decl.Arguments = append(decl.Arguments, arg)
	}

	Logger().Debug("found destination",
		zap.String("id", decl.ID),
		zap.String("type", typeName),
		zap.Int("arguments", len(decl.Arguments)))

	a.decls = append(a.decls, decl)
}

// argumentFromField derives an argument declaration from a struct field.
func argumentFromField(field *types.Var, tag fieldTag) (schema.ArgumentDecl, error) {
	arg := schema.ArgumentDecl{Name: tag.Name}
	if arg.Name == "" {
		arg.Name = naming.Camel(field.Name())
	}

	t := field.Type()
	if ptr, ok := t.(*types.Pointer); ok {
		arg.Nullable = true
		t = ptr.Elem()
	}

	basic, ok := t.Underlying().(*types.Basic)
	if !ok {
		return arg, fmt.Errorf("field %s has unsupported type %s", field.Name(), field.Type())
	}

	info := basic.Info()
	switch {
	case info&types.IsString != 0:
		arg.Type = "string"
	case info&types.IsInteger != 0:
		arg.Type = "int"
	case info&types.IsBoolean != 0:
		arg.Type = "bool"
	case info&types.IsFloat != 0:
		arg.Type = "float"
	default:
		return arg, fmt.Errorf("field %s has unsupported type %s", field.Name(), field.Type())
	}

	if tag.Default != nil {
		arg.Default = &schema.DefaultValue{Text: *tag.Default}
	}

	return arg, nil
}

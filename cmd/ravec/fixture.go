package main

import (
	"bufio"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/ravelang/ravec/ast"
	"github.com/ravelang/ravec/types"
	"github.com/ravelang/ravec/util"
)

const fixtureExt = ".ravetypes"

// reservedNames are the fixture DSL's own keywords; a struct or alias
// cannot be declared under one of these names, since it would be
// indistinguishable from the keyword itself when re-read.
var reservedNames = []string{"struct", "alias", "void"}

func checkNotReserved(kind, name string) error {
	if util.Contains(reservedNames, name) {
		return fmt.Errorf("%s name `%s` collides with a reserved word", kind, name)
	}
	return nil
}

// fixtureResult is what one .ravetypes file contributes: the struct and
// alias declarations it parsed, still unregistered.
type fixtureResult struct {
	path    string
	structs []*ast.StructDecl
	aliases map[string]types.Type
	err     error
}

// loadFixtures discovers every .ravetypes file directly inside root,
// parses them concurrently (mirroring the teacher's concurrent per-file
// package initialization), and only then -- serially, once discovery has
// joined -- registers their declarations into a fresh types.Context. The
// type core's shared tables are never touched from more than one goroutine.
func loadFixtures(root string) (*types.Context, []string, error) {
	entries, err := ioutil.ReadDir(root)
	if err != nil {
		return nil, nil, err
	}

	var paths []string
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == fixtureExt {
			paths = append(paths, filepath.Join(root, e.Name()))
		}
	}

	results := make([]*fixtureResult, len(paths))

	var wg sync.WaitGroup
	ctx := types.NewContext()
	for i, path := range paths {
		wg.Add(1)
		go func(i int, path string) {
			defer wg.Done()
			results[i] = parseFixtureFile(ctx, path)
		}(i, path)
	}
	wg.Wait()

	var names []string
	for _, res := range results {
		if res.err != nil {
			return nil, nil, fmt.Errorf("%s: %w", res.path, res.err)
		}

		for name, t := range res.aliases {
			ctx.DefineAlias(name, t)
		}

		for _, decl := range res.structs {
			ctx.DefineStruct(decl.Name, decl)
			names = append(names, decl.Name)
		}
	}

	sort.Strings(names)
	return ctx, names, nil
}

// parseFixtureFile parses the small line-oriented .ravetypes DSL:
//
//	struct Name {
//	    field: typeExpr
//	    ...
//	}
//	alias Name = typeExpr
//
// typeExpr supports primitive/vector-shorthand names, bare struct-name
// references, `*T` pointers, and `[N]T` arrays. It is not the real Rave
// grammar -- it exists only to give the CLI driver's check subcommand
// something to register into a types.Context.
func parseFixtureFile(ctx *types.Context, path string) *fixtureResult {
	res := &fixtureResult{path: path, aliases: make(map[string]types.Type)}

	f, err := os.Open(path)
	if err != nil {
		res.err = err
		return res
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	var lines []string
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		res.err = err
		return res
	}

	for i := 0; i < len(lines); i++ {
		line := lines[i]

		switch {
		case strings.HasPrefix(line, "struct "):
			decl, consumed, err := parseStructDecl(ctx, lines, i)
			if err != nil {
				res.err = err
				return res
			}
			res.structs = append(res.structs, decl)
			i = consumed

		case strings.HasPrefix(line, "alias "):
			name, t, err := parseAliasDecl(line)
			if err != nil {
				res.err = err
				return res
			}
			res.aliases[name] = t

		default:
			res.err = fmt.Errorf("unrecognized declaration: %q", line)
			return res
		}
	}

	return res
}

// parseStructDecl parses `struct Name {` at lines[start], its field lines,
// and the closing `}`, returning the index of the closing line.
func parseStructDecl(ctx *types.Context, lines []string, start int) (*ast.StructDecl, int, error) {
	header := strings.TrimSuffix(strings.TrimSpace(strings.TrimPrefix(lines[start], "struct ")), "{")
	name := strings.TrimSpace(header)
	if name == "" {
		return nil, start, fmt.Errorf("struct declaration missing a name: %q", lines[start])
	}

	if err := checkNotReserved("struct", name); err != nil {
		return nil, start, err
	}

	var body []any
	i := start + 1
	for ; i < len(lines); i++ {
		line := lines[i]
		if line == "}" {
			decl := ast.NewStructDecl(nil, name, nil, body, ctx)
			return decl, i, nil
		}

		field, err := parseFieldLine(line)
		if err != nil {
			return nil, i, err
		}
		body = append(body, field)
	}

	return nil, i, fmt.Errorf("struct `%s` is missing a closing `}`", name)
}

// parseFieldLine parses `name: typeExpr`.
func parseFieldLine(line string) (*ast.VarDecl, error) {
	parts := strings.SplitN(line, ":", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("malformed field declaration: %q", line)
	}

	name := strings.TrimSpace(parts[0])
	t, err := parseTypeExpr(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, err
	}

	return ast.NewVarDecl(nil, name, t), nil
}

// parseAliasDecl parses `alias Name = typeExpr`.
func parseAliasDecl(line string) (string, types.Type, error) {
	rest := strings.TrimPrefix(line, "alias ")
	parts := strings.SplitN(rest, "=", 2)
	if len(parts) != 2 {
		return "", nil, fmt.Errorf("malformed alias declaration: %q", line)
	}

	name := strings.TrimSpace(parts[0])
	if err := checkNotReserved("alias", name); err != nil {
		return "", nil, err
	}

	t, err := parseTypeExpr(strings.TrimSpace(parts[1]))
	if err != nil {
		return "", nil, err
	}

	return name, t, nil
}

// parseTypeExpr parses a pointer prefix, an array prefix, or a bare name
// (optionally followed by a `<arg,...>` template argument list), falling
// back to an unresolved struct reference for any name the type registry's
// facade does not recognize.
func parseTypeExpr(s string) (types.Type, error) {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "*") {
		inner, err := parseTypeExpr(s[1:])
		if err != nil {
			return nil, err
		}
		return &types.Pointer{Instance: inner}, nil
	}

	if strings.HasPrefix(s, "[") {
		end := strings.IndexByte(s, ']')
		if end < 0 {
			return nil, fmt.Errorf("unterminated array type: %q", s)
		}

		n, err := strconv.ParseInt(strings.TrimSpace(s[1:end]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("array length must be a literal integer: %q", s)
		}

		inner, err := parseTypeExpr(s[end+1:])
		if err != nil {
			return nil, err
		}

		return &types.Array{Count: ast.NewIntegerLiteral(nil, n), Element: inner}, nil
	}

	name := s
	var argStr string
	if open := strings.IndexByte(s, '<'); open >= 0 && strings.HasSuffix(s, ">") {
		name = s[:open]
		argStr = s[open+1 : len(s)-1]
	}

	base := types.NameToType(name)
	if argStr == "" {
		return base, nil
	}

	st, ok := base.(*types.Struct)
	if !ok {
		return nil, fmt.Errorf("`%s` is not a generic struct, cannot apply type arguments", name)
	}

	var args []types.Type
	for _, part := range strings.Split(argStr, ",") {
		arg, err := parseTypeExpr(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}

	st.TypeArgs = args
	st.UpdateByTypes()
	return st, nil
}

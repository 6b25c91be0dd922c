package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/m-mizutani/ctxlog"

	"github.com/Infraviored/OctoPrint-BambuPrinter/pkg/domain/interfaces"
	"github.com/Infraviored/OctoPrint-BambuPrinter/pkg/domain/model"
)

var dirColor = color.New(color.FgBlue, color.Bold)

// Tree renders the printer's directory tree rooted at root. Directories
// come before files at each level, both sorted by name. Errors reading a
// single directory are printed in place; sibling branches continue.
func (uc *inspector) Tree(ctx context.Context, conn interfaces.PrinterConnection, root string) error {
	if root == "" {
		root = "/"
	}

	fmt.Fprintln(uc.out, "Scanning printer filesystem...")
	fmt.Fprintln(uc.out, strings.Repeat("=", 60))
	uc.walkTree(ctx, conn, root, "")
	fmt.Fprintln(uc.out, strings.Repeat("=", 60))
	return nil
}

// walkTree prints one directory level and recurses depth-first.
//
// Classification is best-effort: the listing yields plain descriptors with
// no file/directory flag, so a child whose size query fails is assumed to
// be a directory. A transient error while sizing a real file therefore
// shows it as an empty directory.
func (uc *inspector) walkTree(ctx context.Context, conn interfaces.PrinterConnection, dir, prefix string) {
	logger := ctxlog.From(ctx)

	items, err := conn.ListFiles(ctx, dir, "")
	if err != nil {
		fmt.Fprintf(uc.out, "%sError reading %s: %v\n", prefix, dir, err)
		logger.Error("Failed to list directory", "path", dir, "error", err)
		return
	}

	type sizedFile struct {
		model.RemoteFile
		size int64
	}
	var dirs []model.RemoteFile
	var files []sizedFile
	for _, item := range items {
		size, err := conn.FileSize(ctx, item.Path)
		if err != nil {
			dirs = append(dirs, item)
			continue
		}
		files = append(files, sizedFile{RemoteFile: item, size: size})
	}

	sort.Slice(dirs, func(i, j int) bool { return dirs[i].Name < dirs[j].Name })
	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })

	total := len(dirs) + len(files)

	for i, d := range dirs {
		last := i == total-1
		fmt.Fprintf(uc.out, "%s%s%s/\n", prefix, connector(last), dirColor.Sprint(d.Name))
		uc.walkTree(ctx, conn, d.Path, childPrefix(prefix, last))
	}

	for i, f := range files {
		last := len(dirs)+i == total-1

		date := "?"
		if mtime, err := conn.FileDate(ctx, f.Path); err == nil {
			date = mtime.Format("2006-01-02 15:04:05")
		}
		fmt.Fprintf(uc.out, "%s%s%s (%d bytes, %s)\n", prefix, connector(last), f.Name, f.size, date)
	}
}

func connector(last bool) string {
	if last {
		return "└── "
	}
	return "├── "
}

func childPrefix(prefix string, last bool) string {
	if last {
		return prefix + "    "
	}
	return prefix + "│   "
}

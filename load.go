package gorosidl

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/golangros/gorosidl/ifc"
	"github.com/golangros/gorosidl/internal/parser"
	"github.com/golangros/gorosidl/internal/types"
)

func componentLogger(logger *slog.Logger, component string) types.Logger {
	if logger == nil {
		return types.Logger{}
	}
	return types.Logger{L: logger.With(slog.String("component", component))}
}

// LoadMessages builds one Message per .msg file in the source, in
// enumeration order. The first unreadable file aborts the whole
// aggregation; malformed content never does.
func LoadMessages(src Source, pkg string, opts ...LoadOption) ([]*ifc.Message, error) {
	cfg := newLoadConfig(opts)
	return loadMessages(src, pkg, cfg)
}

// LoadServices builds one Service per .srv file in the source.
func LoadServices(src Source, pkg string, opts ...LoadOption) ([]*ifc.Service, error) {
	cfg := newLoadConfig(opts)
	return loadServices(src, pkg, cfg)
}

// LoadActions builds one Action per .action file in the source.
func LoadActions(src Source, pkg string, opts ...LoadOption) ([]*ifc.Action, error) {
	cfg := newLoadConfig(opts)
	return loadActions(src, pkg, cfg)
}

// LoadPackage aggregates the msg/, srv/, and action/ subdirectories of a
// package share directory into a single Package model. A missing
// subdirectory yields an empty section, not an error.
func LoadPackage(name, shareDir string, opts ...LoadOption) (*ifc.Package, error) {
	cfg := newLoadConfig(opts)
	logger := componentLogger(cfg.logger, "loader")

	pkg := &ifc.Package{Name: name}

	if src, ok, err := optionalDir(filepath.Join(shareDir, "msg")); err != nil {
		return nil, err
	} else if ok {
		msgs, err := loadMessages(src, name, cfg)
		if err != nil {
			return nil, err
		}
		pkg.Messages = msgs
	}

	if src, ok, err := optionalDir(filepath.Join(shareDir, "srv")); err != nil {
		return nil, err
	} else if ok {
		srvs, err := loadServices(src, name, cfg)
		if err != nil {
			return nil, err
		}
		pkg.Services = srvs
	}

	if src, ok, err := optionalDir(filepath.Join(shareDir, "action")); err != nil {
		return nil, err
	} else if ok {
		actions, err := loadActions(src, name, cfg)
		if err != nil {
			return nil, err
		}
		pkg.Actions = actions
	}

	logger.Log(slog.LevelInfo, "package loaded",
		slog.String("package", name),
		slog.Int("messages", pkg.MessageCount()),
		slog.Int("services", pkg.ServiceCount()),
		slog.Int("actions", pkg.ActionCount()))
	return pkg, nil
}

// LoadPackageFromIndex locates the package share directory on the ament
// search paths, then loads it.
func LoadPackageFromIndex(name string, opts ...LoadOption) (*ifc.Package, error) {
	cfg := newLoadConfig(opts)
	shareDir, err := findPackageShare(name, componentLogger(cfg.logger, "searchpath"))
	if err != nil {
		return nil, err
	}
	return LoadPackage(name, shareDir, opts...)
}

// optionalDir opens a directory source, treating a missing directory as
// absent rather than an error.
func optionalDir(path string) (Source, bool, error) {
	src, err := Dir(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return src, true, nil
}

func loadMessages(src Source, pkg string, cfg loadConfig) ([]*ifc.Message, error) {
	logger := componentLogger(cfg.logger, "parser")
	var msgs []*ifc.Message
	err := eachFile(src, cfg.extMsg, cfg, func(name string, r io.Reader) error {
		m, err := parser.Message(name, r, pkg, logger)
		if err != nil {
			return err
		}
		msgs = append(msgs, m)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return msgs, nil
}

func loadServices(src Source, pkg string, cfg loadConfig) ([]*ifc.Service, error) {
	logger := componentLogger(cfg.logger, "parser")
	var srvs []*ifc.Service
	err := eachFile(src, cfg.extSrv, cfg, func(name string, r io.Reader) error {
		s, err := parser.Service(name, r, pkg, logger)
		if err != nil {
			return err
		}
		srvs = append(srvs, s)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return srvs, nil
}

func loadActions(src Source, pkg string, cfg loadConfig) ([]*ifc.Action, error) {
	logger := componentLogger(cfg.logger, "parser")
	var actions []*ifc.Action
	err := eachFile(src, cfg.extAction, cfg, func(name string, r io.Reader) error {
		a, err := parser.Action(name, r, pkg, logger)
		if err != nil {
			return err
		}
		actions = append(actions, a)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return actions, nil
}

// eachFile enumerates the source's files of one kind and invokes build
// for each, one at a time. Every file is closed before the next is
// opened, on all exit paths.
func eachFile(src Source, ext string, cfg loadConfig, build func(name string, r io.Reader) error) error {
	if src == nil {
		return ErrNoSource
	}
	logger := componentLogger(cfg.logger, "loader")

	files, err := src.ListFiles(ext)
	if err != nil {
		return err
	}
	logger.Log(slog.LevelDebug, "enumerated files",
		slog.String("ext", ext), slog.Int("count", len(files)))

	for _, path := range files {
		if err := buildOne(src, path, build); err != nil {
			return err
		}
	}
	return nil
}

func buildOne(src Source, path string, build func(name string, r io.Reader) error) error {
	r, err := src.Open(path)
	if err != nil {
		return err
	}
	defer r.Close() //nolint:errcheck // read-only handle
	return build(stemFromPath(path), r)
}

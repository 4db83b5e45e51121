// Package vcs wraps the git operations soltools needs: cloning package
// sources, initialising new package repositories and reading the user's
// global identity.
package vcs

import (
	"context"
	stderrors "errors"
	"io"

	"github.com/EbonJaeger/soltools/pkg/errors"
	"github.com/EbonJaeger/soltools/pkg/logging"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
)

// Client performs repository operations.
type Client interface {
	Clone(ctx context.Context, url, path string, progress io.Writer) error
	Init(path string) error
}

// Identity is a git author identity.
type Identity struct {
	Name  string
	Email string
}

// Complete reports whether both name and email are set.
func (i Identity) Complete() bool {
	return i.Name != "" && i.Email != ""
}

// GitClient implements Client with go-git.
type GitClient struct{}

func NewGitClient() *GitClient {
	return &GitClient{}
}

// Clone clones url into path. Progress output is written to progress when
// it is non-nil.
func (c *GitClient) Clone(ctx context.Context, url, path string, progress io.Writer) error {
	logger := logging.GetLogger("vcs")
	logger.Debug().Str("url", url).Str("path", path).Msg("Cloning repository")

	_, err := git.PlainCloneContext(ctx, path, false, &git.CloneOptions{
		URL:      url,
		Progress: progress,
	})
	if err == nil {
		return nil
	}
	if stderrors.Is(err, git.ErrRepositoryAlreadyExists) {
		return errors.Wrapf(err, errors.ErrPrecondition, "%s already contains a repository", path).
			WithDetail("path", path)
	}
	return errors.Wrapf(err, errors.ErrExternalTool, "failed to clone %s", url).
		WithDetail("url", url).
		WithDetail("path", path)
}

// Init creates an empty repository with a working tree at path.
func (c *GitClient) Init(path string) error {
	logger := logging.GetLogger("vcs")
	logger.Debug().Str("path", path).Msg("Initialising repository")

	_, err := git.PlainInit(path, false)
	if err == nil {
		return nil
	}
	if stderrors.Is(err, git.ErrRepositoryAlreadyExists) {
		return errors.Wrapf(err, errors.ErrPrecondition, "%s is already a git repository", path).
			WithDetail("path", path)
	}
	return errors.Wrapf(err, errors.ErrExternalTool, "failed to initialise repository in %s", path).
		WithDetail("path", path)
}

// loadGlobalConfig is swapped in tests.
var loadGlobalConfig = func() (*config.Config, error) {
	return config.LoadConfig(config.GlobalScope)
}

// GlobalIdentity returns user.name and user.email from the global git
// config. A missing config yields an empty Identity.
func GlobalIdentity() (Identity, error) {
	cfg, err := loadGlobalConfig()
	if err != nil {
		return Identity{}, errors.Wrap(err, errors.ErrConfig, "failed to read global git config")
	}
	return Identity{Name: cfg.User.Name, Email: cfg.User.Email}, nil
}

package config

import (
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/keertidamani/ghcensus/pkg/repository/csvfile"
)

// Dataset is the location of the persisted Users and Repositories relations
type Dataset struct {
	dir       string
	usersFile string
	reposFile string
}

func (x *Dataset) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "data-dir",
			Usage:       "Directory of the dataset CSV files",
			Category:    "Dataset",
			Destination: &x.dir,
			Sources:     cli.EnvVars("GHCENSUS_DATA_DIR"),
			Value:       ".",
		},
		&cli.StringFlag{
			Name:        "users-file",
			Usage:       "File name of users CSV",
			Category:    "Dataset",
			Destination: &x.usersFile,
			Sources:     cli.EnvVars("GHCENSUS_USERS_FILE"),
			Value:       csvfile.DefaultUsersFile,
		},
		&cli.StringFlag{
			Name:        "repos-file",
			Usage:       "File name of repositories CSV",
			Category:    "Dataset",
			Destination: &x.reposFile,
			Sources:     cli.EnvVars("GHCENSUS_REPOS_FILE"),
			Value:       csvfile.DefaultReposFile,
		},
	}
}

func (x *Dataset) NewRepository() *csvfile.Repository {
	return csvfile.New(x.dir,
		csvfile.WithUsersFile(x.usersFile),
		csvfile.WithReposFile(x.reposFile),
	)
}

func (x *Dataset) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("Dir", x.dir),
		slog.String("UsersFile", x.usersFile),
		slog.String("ReposFile", x.reposFile),
	)
}

package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/keertidamani/ghcensus/pkg/domain/interfaces"
	"github.com/keertidamani/ghcensus/pkg/domain/model"
	"github.com/keertidamani/ghcensus/pkg/domain/types"
	"github.com/keertidamani/ghcensus/pkg/repository"
	"github.com/keertidamani/ghcensus/pkg/utils/logging"
	"github.com/keertidamani/ghcensus/pkg/utils/safe"
)

const (
	DefaultUsersFile = "users.csv"
	DefaultReposFile = "repositories.csv"
)

var (
	userColumns = []string{
		"login", "name", "company", "location", "email", "hireable", "bio",
		"public_repos", "followers", "following", "created_at",
	}
	repoColumns = []string{
		"login", "full_name", "created_at", "stargazers_count",
		"watchers_count", "language", "has_projects", "has_wiki", "license_name",
	}
)

// timestamp layouts accepted on read. The first one is used on write.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
}

// Repository serializes writers against readers within the process, so GetDataset never
// returns users and repositories from two different PutDataset calls.
type Repository struct {
	dir       string
	usersFile string
	reposFile string

	mu sync.RWMutex
}

var _ interfaces.DatasetRepository = (*Repository)(nil)

type Option func(*Repository)

func WithUsersFile(name string) Option {
	return func(x *Repository) {
		x.usersFile = name
	}
}

func WithReposFile(name string) Option {
	return func(x *Repository) {
		x.reposFile = name
	}
}

// New creates a repository that keeps users and repositories as two CSV files in dir.
func New(dir string, options ...Option) *Repository {
	x := &Repository{
		dir:       dir,
		usersFile: DefaultUsersFile,
		reposFile: DefaultReposFile,
	}
	for _, opt := range options {
		opt(x)
	}
	return x
}

func (x *Repository) UsersPath() string {
	return filepath.Join(x.dir, x.usersFile)
}

func (x *Repository) ReposPath() string {
	return filepath.Join(x.dir, x.reposFile)
}

func (x *Repository) PutUsers(ctx context.Context, users []*model.User) error {
	rows, err := userRows(users)
	if err != nil {
		return err
	}

	staged, err := stageFile(ctx, x.UsersPath(), userColumns, rows)
	if err != nil {
		return err
	}

	x.mu.Lock()
	defer x.mu.Unlock()
	if err := staged.commit(); err != nil {
		staged.discard(ctx)
		return err
	}

	logging.From(ctx).Info("users saved", slog.String("path", x.UsersPath()), slog.Int("count", len(rows)))
	return nil
}

func (x *Repository) PutRepositories(ctx context.Context, repos []*model.Repository) error {
	rows, err := repoRows(repos)
	if err != nil {
		return err
	}

	staged, err := stageFile(ctx, x.ReposPath(), repoColumns, rows)
	if err != nil {
		return err
	}

	x.mu.Lock()
	defer x.mu.Unlock()
	if err := staged.commit(); err != nil {
		staged.discard(ctx)
		return err
	}

	logging.From(ctx).Info("repositories saved", slog.String("path", x.ReposPath()), slog.Int("count", len(rows)))
	return nil
}

// PutDataset writes both relations to temporary files first. The stored files are replaced
// only after both are written, and nothing is replaced if either write fails.
func (x *Repository) PutDataset(ctx context.Context, ds *model.Dataset) error {
	if ds == nil {
		return goerr.Wrap(repository.ErrInvalidInput, "nil dataset")
	}
	userRecords, err := userRows(ds.Users)
	if err != nil {
		return err
	}
	repoRecords, err := repoRows(ds.Repositories)
	if err != nil {
		return err
	}

	stagedUsers, err := stageFile(ctx, x.UsersPath(), userColumns, userRecords)
	if err != nil {
		return err
	}
	stagedRepos, err := stageFile(ctx, x.ReposPath(), repoColumns, repoRecords)
	if err != nil {
		stagedUsers.discard(ctx)
		return err
	}

	x.mu.Lock()
	defer x.mu.Unlock()
	if err := stagedUsers.commit(); err != nil {
		stagedUsers.discard(ctx)
		stagedRepos.discard(ctx)
		return err
	}
	if err := stagedRepos.commit(); err != nil {
		stagedRepos.discard(ctx)
		return err
	}

	logging.From(ctx).Info("dataset saved",
		slog.String("users_path", x.UsersPath()),
		slog.Int("users", len(userRecords)),
		slog.String("repos_path", x.ReposPath()),
		slog.Int("repositories", len(repoRecords)),
	)
	return nil
}

func userRows(users []*model.User) ([][]string, error) {
	rows := make([][]string, 0, len(users))
	for i, u := range users {
		if u == nil {
			return nil, goerr.Wrap(repository.ErrInvalidInput, "nil user", goerr.V("index", i))
		}
		rows = append(rows, []string{
			u.Login,
			u.Name,
			u.Company,
			u.Location,
			u.Email,
			u.Hireable.String(),
			u.Bio,
			strconv.Itoa(u.PublicRepos),
			strconv.Itoa(u.Followers),
			strconv.Itoa(u.Following),
			formatTime(u.CreatedAt),
		})
	}
	return rows, nil
}

func repoRows(repos []*model.Repository) ([][]string, error) {
	rows := make([][]string, 0, len(repos))
	for i, r := range repos {
		if r == nil {
			return nil, goerr.Wrap(repository.ErrInvalidInput, "nil repository", goerr.V("index", i))
		}
		rows = append(rows, []string{
			r.Login,
			r.FullName,
			formatTime(r.CreatedAt),
			strconv.Itoa(r.StargazersCount),
			strconv.Itoa(r.WatchersCount),
			r.Language,
			strconv.FormatBool(r.HasProjects),
			strconv.FormatBool(r.HasWiki),
			r.LicenseName,
		})
	}
	return rows, nil
}

func (x *Repository) GetDataset(ctx context.Context) (*model.Dataset, error) {
	x.mu.RLock()
	defer x.mu.RUnlock()

	users, err := x.readUsers(ctx)
	if err != nil {
		return nil, err
	}
	repos, err := x.readRepositories(ctx)
	if err != nil {
		return nil, err
	}
	return &model.Dataset{Users: users, Repositories: repos}, nil
}

func (x *Repository) GetUsers(ctx context.Context) ([]*model.User, error) {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return x.readUsers(ctx)
}

func (x *Repository) GetRepositories(ctx context.Context) ([]*model.Repository, error) {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return x.readRepositories(ctx)
}

func (x *Repository) readUsers(ctx context.Context) ([]*model.User, error) {
	var users []*model.User
	err := readFile(ctx, x.UsersPath(), userColumns, func(rec record) error {
		hireable, err := model.ParseHireable(rec.get("hireable"))
		if err != nil {
			return err
		}
		user := &model.User{
			Login:    rec.get("login"),
			Name:     rec.get("name"),
			Company:  rec.get("company"),
			Location: rec.get("location"),
			Email:    rec.get("email"),
			Hireable: hireable,
			Bio:      rec.get("bio"),
		}
		if user.PublicRepos, err = rec.intValue("public_repos"); err != nil {
			return err
		}
		if user.Followers, err = rec.intValue("followers"); err != nil {
			return err
		}
		if user.Following, err = rec.intValue("following"); err != nil {
			return err
		}
		if user.CreatedAt, err = rec.timeValue("created_at"); err != nil {
			return err
		}

		users = append(users, user)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return users, nil
}

func (x *Repository) readRepositories(ctx context.Context) ([]*model.Repository, error) {
	var repos []*model.Repository
	err := readFile(ctx, x.ReposPath(), repoColumns, func(rec record) error {
		repo := &model.Repository{
			Login:       rec.get("login"),
			FullName:    rec.get("full_name"),
			Language:    rec.get("language"),
			LicenseName: rec.get("license_name"),
		}

		var err error
		if repo.CreatedAt, err = rec.timeValue("created_at"); err != nil {
			return err
		}
		if repo.StargazersCount, err = rec.intValue("stargazers_count"); err != nil {
			return err
		}
		if repo.WatchersCount, err = rec.intValue("watchers_count"); err != nil {
			return err
		}
		if repo.HasProjects, err = rec.boolValue("has_projects"); err != nil {
			return err
		}
		if repo.HasWiki, err = rec.boolValue("has_wiki"); err != nil {
			return err
		}

		repos = append(repos, repo)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return repos, nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(timeLayouts[0])
}

// stagedFile is a fully written temporary file waiting to be renamed over path
type stagedFile struct {
	tmpPath string
	path    string
}

// stageFile writes header and rows into a temporary file in the same directory as path, so a
// failed run never leaves a truncated relation behind.
func stageFile(ctx context.Context, path string, header []string, rows [][]string) (*stagedFile, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, goerr.Wrap(err, "failed to create data directory", goerr.V("dir", dir))
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create temporary file", goerr.V("dir", dir))
	}
	tmpPath := tmp.Name()

	staged := false
	defer func() {
		if !staged {
			safe.Close(ctx, tmp)
			safe.Remove(ctx, tmpPath)
		}
	}()

	w := csv.NewWriter(tmp)
	if err := w.Write(header); err != nil {
		return nil, goerr.Wrap(err, "failed to write csv header", goerr.V("path", path))
	}
	if err := w.WriteAll(rows); err != nil {
		return nil, goerr.Wrap(err, "failed to write csv rows", goerr.V("path", path))
	}

	if err := tmp.Close(); err != nil {
		return nil, goerr.Wrap(err, "failed to close temporary file", goerr.V("path", tmpPath))
	}
	staged = true

	return &stagedFile{tmpPath: tmpPath, path: path}, nil
}

func (x *stagedFile) commit() error {
	if err := os.Rename(x.tmpPath, x.path); err != nil {
		return goerr.Wrap(err, "failed to rename temporary file", goerr.V("from", x.tmpPath), goerr.V("to", x.path))
	}
	return nil
}

func (x *stagedFile) discard(ctx context.Context) {
	safe.Remove(ctx, x.tmpPath)
}

type record struct {
	path   string
	row    int
	index  map[string]int
	fields []string
}

func (x record) get(column string) string {
	return x.fields[x.index[column]]
}

func (x record) fail(column string, cause error) error {
	return goerr.Wrap(types.ErrInvalidDataset, "invalid csv value",
		goerr.V("path", x.path),
		goerr.V("row", x.row),
		goerr.V("column", column),
		goerr.V("value", x.get(column)),
		goerr.V("cause", cause),
	)
}

func (x record) intValue(column string) (int, error) {
	v := strings.TrimSpace(x.get(column))
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, x.fail(column, err)
	}
	if n < 0 {
		return 0, x.fail(column, errors.New("negative count"))
	}
	return n, nil
}

// boolValue accepts true/false in any case (Python writes True/False). Empty means false.
func (x record) boolValue(column string) (bool, error) {
	v := strings.TrimSpace(x.get(column))
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, x.fail(column, err)
	}
	return b, nil
}

func (x record) timeValue(column string) (time.Time, error) {
	v := strings.TrimSpace(x.get(column))
	if v == "" {
		return time.Time{}, nil
	}
	var lastErr error
	for _, layout := range timeLayouts {
		t, err := time.Parse(layout, v)
		if err == nil {
			return t.UTC(), nil
		}
		lastErr = err
	}
	return time.Time{}, x.fail(column, lastErr)
}

func readFile(ctx context.Context, path string, columns []string, fn func(rec record) error) error {
	fd, err := os.Open(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return goerr.Wrap(repository.ErrNotFound, "csv file not found", goerr.V("path", path))
		}
		return goerr.Wrap(err, "failed to open csv file", goerr.V("path", path))
	}
	defer safe.Close(ctx, fd)

	r := csv.NewReader(fd)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return goerr.Wrap(types.ErrInvalidDataset, "csv file has no header", goerr.V("path", path))
		}
		return goerr.Wrap(err, "failed to read csv header", goerr.V("path", path))
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		// Files saved by spreadsheet tools may start with a BOM
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		index[strings.TrimSpace(name)] = i
	}
	for _, c := range columns {
		if _, ok := index[c]; !ok {
			return goerr.Wrap(types.ErrInvalidDataset, "missing csv column", goerr.V("path", path), goerr.V("column", c))
		}
	}

	for row := 1; ; row++ {
		fields, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return goerr.Wrap(types.ErrInvalidDataset, "failed to parse csv", goerr.V("path", path), goerr.V("cause", err))
		}
		if len(fields) < len(header) {
			return goerr.Wrap(types.ErrInvalidDataset, "too few csv fields",
				goerr.V("path", path), goerr.V("row", row), goerr.V("fields", len(fields)))
		}

		if err := fn(record{path: path, row: row, index: index, fields: fields}); err != nil {
			return err
		}
	}

	return nil
}

package filestore

import (
	"context"
	"encoding/json"
	"io/ioutil"
	"os"
	"os/user"
	"path/filepath"
	"sync"

	"github.com/battlesnakeio/snake/highscore"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const fileName = "highscores.json"

func defaultDir() string {
	return filepath.Join(homeDir(), ".snake")
}

func homeDir() string {
	usr, err := user.Current()
	if err != nil {
		return "."
	}
	return usr.HomeDir
}

// NewFileStore returns a file based store implementation. All slots share a
// single JSON document in directory.
func NewFileStore(directory string) highscore.Store {
	if directory == "" {
		directory = defaultDir()
	}

	return &fileStore{
		path: filepath.Join(directory, fileName),
	}
}

type fileStore struct {
	path string
	lock sync.Mutex
}

func (fs *fileStore) read() (map[string]int, error) {
	scores := map[string]int{}
	data, err := ioutil.ReadFile(fs.path)
	if os.IsNotExist(err) {
		return scores, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read %s", fs.path)
	}
	if len(data) == 0 {
		return scores, nil
	}
	if err := json.Unmarshal(data, &scores); err != nil {
		return nil, errors.Wrapf(err, "corrupt high score file %s", fs.path)
	}
	return scores, nil
}

// write replaces the file through a rename so a crash never leaves a partly
// written document behind.
func (fs *fileStore) write(scores map[string]int) error {
	data, err := json.MarshalIndent(scores, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(fs.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, "unable to create %s", dir)
	}

	tmp, err := ioutil.TempFile(dir, fileName+".*")
	if err != nil {
		return errors.Wrap(err, "unable to create temp file")
	}
	defer func() {
		if rErr := os.Remove(tmp.Name()); rErr != nil && !os.IsNotExist(rErr) {
			log.WithError(rErr).WithField("file", tmp.Name()).Warn("unable to remove temp file")
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrap(err, "unable to write temp file")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "unable to close temp file")
	}
	return errors.Wrap(os.Rename(tmp.Name(), fs.path), "unable to replace high score file")
}

func (fs *fileStore) Load(ctx context.Context, slot string) (int, error) {
	fs.lock.Lock()
	defer fs.lock.Unlock()

	scores, err := fs.read()
	if err != nil {
		return 0, err
	}
	score, ok := scores[slot]
	if !ok {
		return 0, highscore.ErrNotFound
	}
	return score, nil
}

func (fs *fileStore) Save(ctx context.Context, slot string, score int) error {
	if score < 0 {
		return highscore.ErrInvalidScore
	}
	fs.lock.Lock()
	defer fs.lock.Unlock()

	scores, err := fs.read()
	if err != nil {
		return err
	}
	scores[slot] = score
	return fs.write(scores)
}

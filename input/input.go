// Package input loads puzzle input text, with a local file cache backed
// by an authenticated fetch from adventofcode.com.
package input

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// YEAR is the puzzle event year.
const YEAR = 2017

// Dir is the directory searched for cached dayNN.txt files.
var Dir = "input"

// Load returns the input text for a day, reading the local cache first
// and falling back to an authenticated fetch. Fetched inputs are cached
// for the next run.
func Load(day int) (text string, err error) {
	path := filepath.Join(Dir, fmt.Sprintf("day%02d.txt", day))

	data, err := os.ReadFile(path)
	if err == nil {
		text = string(data)
		return
	}
	if !os.IsNotExist(err) {
		return
	}

	text, err = fetch(day)
	if err != nil {
		return
	}

	err = os.MkdirAll(Dir, 0o755)
	if err == nil {
		err = os.WriteFile(path, []byte(text), 0o644)
	}
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("input cache write failed")
		err = nil
	}

	return
}

// session returns the adventofcode.com session cookie, from the AOC_SESSION
// environment variable or a .env file.
func session() (cookie string, err error) {
	_ = godotenv.Load()

	cookie = strings.TrimSpace(os.Getenv("AOC_SESSION"))
	if cookie == "" {
		err = ErrNoSession
	}

	return
}

// fetch downloads a day's input with the session cookie.
func fetch(day int) (text string, err error) {
	cookie, err := session()
	if err != nil {
		return
	}

	url := fmt.Sprintf("https://adventofcode.com/%d/day/%d/input", YEAR, day)
	log.Info().Str("url", url).Msg("fetching input")

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return
	}
	req.AddCookie(&http.Cookie{Name: "session", Value: cookie})

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err = ErrFetchStatus(resp.StatusCode)
		return
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return
	}
	text = string(data)

	return
}

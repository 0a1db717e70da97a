package models

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// FileRecord represents a single downloadable file of a project
// This structure maps directly to one row of the project's files page
type FileRecord struct {
	ID            int       `json:"id"`             // Numeric file id taken from the file link
	Link          string    `json:"link"`           // Absolute download URL
	Name          string    `json:"name"`           // Display name, also used as the local file name
	Size          string    `json:"size"`           // Size as shown by the site, e.g. "1.2 MB"
	Uploaded      time.Time `json:"uploaded"`       // Decoded from the epoch-seconds attribute
	UploadedHuman string    `json:"uploaded_human"` // Upload time as shown by the site
	GameVersion   string    `json:"game_version"`   // Target game version label
	Downloads     int       `json:"downloads"`      // Download count
}

// String returns the label shown when choosing a file
func (f FileRecord) String() string {
	return fmt.Sprintf("%s for %s (uploaded %s, %d downloads, %s)",
		f.Name,
		f.GameVersion,
		f.UploadedHuman,
		f.Downloads,
		f.Size)
}

// SortByUploadedDesc orders files newest first, keeping page order for equal timestamps
func SortByUploadedDesc(files []FileRecord) {
	sort.SliceStable(files, func(i, j int) bool {
		return files[i].Uploaded.After(files[j].Uploaded)
	})
}

var thousandsSeparators = strings.NewReplacer(
	",", "",
	".", "",
	"'", "",
	" ", "",
	"\u00a0", "",
	"\u202f", "",
)

// ParseDownloadCount parses a download count such as "12,345"
func ParseDownloadCount(s string) (int, error) {
	cleaned := thousandsSeparators.Replace(strings.TrimSpace(s))
	if cleaned == "" {
		return 0, fmt.Errorf("%w: empty download count", ErrParse)
	}

	n, err := strconv.Atoi(cleaned)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: invalid download count %q", ErrParse, s)
	}
	return n, nil
}

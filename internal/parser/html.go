// Package parser extracts mod and file records from the site's HTML pages
// All markup selectors live here, so a change in the site layout only touches this package
package parser

import (
	"fmt"
	"io"
	"net/url"
	"path"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	xmlpath "gopkg.in/xmlpath.v2"

	"mdl/internal/models"
)

var (
	// Search results page
	searchRowPath     = xmlpath.MustCompile(`//table[contains(@class,"listing")]//tr[contains(@class,"results")]`)
	searchNamePath    = xmlpath.MustCompile(`.//*[contains(@class,"results-name")]//a`)
	searchHrefPath    = xmlpath.MustCompile(`.//*[contains(@class,"results-name")]//a/@href`)
	searchSummaryPath = xmlpath.MustCompile(`.//*[contains(@class,"results-summary")]`)
	searchOwnerPath   = xmlpath.MustCompile(`.//*[contains(@class,"results-owner")]//a`)

	// Project files page
	fileRowPath       = xmlpath.MustCompile(`//tr[contains(@class,"project-file-list-item")]`)
	fileNamePath      = xmlpath.MustCompile(`./td//a[contains(@class,"twitch-link")]`)
	fileHrefPath      = xmlpath.MustCompile(`./td//a[contains(@class,"twitch-link")]/@href`)
	fileSizePath      = xmlpath.MustCompile(`./td[contains(@class,"project-file-size")]`)
	fileUploadedPath  = xmlpath.MustCompile(`./td[contains(@class,"project-file-date-uploaded")]//abbr`)
	fileEpochPath     = xmlpath.MustCompile(`./td[contains(@class,"project-file-date-uploaded")]//abbr/@data-epoch`)
	fileVersionPath   = xmlpath.MustCompile(`./td//span[contains(@class,"version-label")]`)
	fileDownloadsPath = xmlpath.MustCompile(`./td[contains(@class,"project-file-downloads")]`)

	// contains() matches substrings, so rows are narrowed to exact class tokens in hasClass
	classPath = xmlpath.MustCompile(`./@class`)

	trailingDigits = regexp.MustCompile(`\d+$`)
)

// ParseSearchResults reads a search results page and returns one summary per result row
// in page order. A page without result rows yields an empty slice and no error.
func ParseSearchResults(r io.Reader) ([]models.ModSummary, error) {
	doc, err := xmlpath.ParseHTML(r)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse search page: %v", models.ErrParse, err)
	}

	mods := []models.ModSummary{}
	iter := searchRowPath.Iter(doc)
	for row := 1; iter.Next(); {
		if !hasClass(iter.Node(), "results") {
			continue
		}
		mod, err := parseSearchRow(iter.Node())
		if err != nil {
			return nil, fmt.Errorf("search result %d: %w", row, err)
		}
		mods = append(mods, mod)
		row++
	}

	return mods, nil
}

func parseSearchRow(row *xmlpath.Node) (models.ModSummary, error) {
	var mod models.ModSummary

	href, err := requireString(searchHrefPath, row, "project link")
	if err != nil {
		return mod, err
	}
	mod.Slug, mod.ID, err = ParseProjectLink(href)
	if err != nil {
		return mod, err
	}

	if mod.Name, err = requireString(searchNamePath, row, "project name"); err != nil {
		return mod, err
	}
	if mod.Description, err = requireString(searchSummaryPath, row, "project summary"); err != nil {
		return mod, err
	}
	if mod.Author, err = requireString(searchOwnerPath, row, "project owner"); err != nil {
		return mod, err
	}

	return mod, nil
}

// ParseProjectLink extracts the slug (last path segment) and numeric project id
// from a search result link such as "/projects/jei?id=238222".
// Older pages carry the id as "projectID", which is accepted as well.
func ParseProjectLink(href string) (string, int, error) {
	u, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return "", 0, fmt.Errorf("%w: invalid project link %q: %v", models.ErrParse, href, err)
	}

	slug := path.Base(strings.TrimSuffix(u.Path, "/"))
	if slug == "." || slug == "/" || slug == "" {
		return "", 0, fmt.Errorf("%w: no slug in project link %q", models.ErrParse, href)
	}

	query := u.Query()
	rawID := query.Get("id")
	if rawID == "" {
		rawID = query.Get("projectID")
	}
	if rawID == "" {
		return "", 0, fmt.Errorf("%w: no project id in link %q", models.ErrParse, href)
	}

	id, err := strconv.Atoi(rawID)
	if err != nil {
		return "", 0, fmt.Errorf("%w: invalid project id %q", models.ErrParse, rawID)
	}

	return slug, id, nil
}

// ParseFileList reads a project files page and returns one record per file row in page order.
// link builds each record's download URL from its file id; the per-row download button is
// not used because it is missing or wrong for some project types.
// A row whose link carries no numeric id aborts the whole parse.
func ParseFileList(r io.Reader, link func(id int) string) ([]models.FileRecord, error) {
	doc, err := xmlpath.ParseHTML(r)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse files page: %v", models.ErrParse, err)
	}

	files := []models.FileRecord{}
	iter := fileRowPath.Iter(doc)
	for row := 1; iter.Next(); {
		if !hasClass(iter.Node(), "project-file-list-item") {
			continue
		}
		file, err := parseFileRow(iter.Node())
		if err != nil {
			return nil, fmt.Errorf("file row %d: %w", row, err)
		}
		if link != nil {
			file.Link = link(file.ID)
		}
		files = append(files, file)
		row++
	}

	return files, nil
}

func parseFileRow(row *xmlpath.Node) (models.FileRecord, error) {
	var file models.FileRecord

	href, err := requireString(fileHrefPath, row, "file link")
	if err != nil {
		return file, err
	}
	if file.ID, err = FileID(href); err != nil {
		return file, err
	}

	if file.Name, err = requireString(fileNamePath, row, "file name"); err != nil {
		return file, err
	}
	if file.Size, err = requireString(fileSizePath, row, "file size"); err != nil {
		return file, err
	}
	if file.UploadedHuman, err = requireString(fileUploadedPath, row, "upload date"); err != nil {
		return file, err
	}

	epoch, err := requireString(fileEpochPath, row, "upload epoch")
	if err != nil {
		return file, err
	}
	seconds, err := strconv.ParseInt(epoch, 10, 64)
	if err != nil {
		return file, fmt.Errorf("%w: invalid upload epoch %q", models.ErrParse, epoch)
	}
	file.Uploaded = time.Unix(seconds, 0)

	if file.GameVersion, err = requireString(fileVersionPath, row, "game version"); err != nil {
		return file, err
	}

	downloads, err := requireString(fileDownloadsPath, row, "download count")
	if err != nil {
		return file, err
	}
	if file.Downloads, err = models.ParseDownloadCount(downloads); err != nil {
		return file, err
	}

	return file, nil
}

// FileID returns the trailing run of digits in a file link such as "/projects/jei/files/2724420"
func FileID(href string) (int, error) {
	digits := trailingDigits.FindString(strings.TrimSpace(href))
	if digits == "" {
		return 0, fmt.Errorf("%w: no file id in link %q", models.ErrParse, href)
	}

	id, err := strconv.Atoi(digits)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid file id %q", models.ErrParse, digits)
	}
	return id, nil
}

// hasClass reports whether node's class attribute lists name as one of its tokens
func hasClass(node *xmlpath.Node, name string) bool {
	class, ok := classPath.String(node)
	if !ok {
		return false
	}
	return slices.Contains(strings.Fields(class), name)
}

// requireString evaluates p against node and returns the trimmed text of the first match
func requireString(p *xmlpath.Path, node *xmlpath.Node, what string) (string, error) {
	s, ok := p.String(node)
	if !ok {
		return "", fmt.Errorf("%w: missing %s", models.ErrParse, what)
	}
	return strings.TrimSpace(s), nil
}

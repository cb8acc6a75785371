// Command seedmei converts a Carl Nielsen Works MEI document into a work
// create payload and optionally seeds it into the catalogue through the
// store layer. Contributors are matched against existing persons by name;
// unmatched contributors are created first.
package main

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/openmusicarchive/catalogue/internal/catalogue/model"
	"github.com/openmusicarchive/catalogue/internal/catalogue/store"
	"github.com/openmusicarchive/catalogue/internal/config"
	"github.com/openmusicarchive/catalogue/internal/supabase"
	"github.com/openmusicarchive/catalogue/pkg/logger"
)

type meiTitle struct {
	Value string `xml:",chardata"`
	Lang  string `xml:"http://www.w3.org/XML/1998/namespace lang,attr"`
	Type  string `xml:"type,attr"`
}

type meiIdentifier struct {
	Label string `xml:"label,attr"`
	Value string `xml:",chardata"`
}

type meiDate struct {
	NotBefore string `xml:"notbefore,attr"`
	StartDate string `xml:"startdate,attr"`
	NotAfter  string `xml:"notafter,attr"`
	EndDate   string `xml:"enddate,attr"`
}

type meiPersName struct {
	Value string `xml:",chardata"`
	Role  string `xml:"role,attr"`
}

type meiLanguage struct {
	ID    string `xml:"http://www.w3.org/XML/1998/namespace id,attr"`
	Value string `xml:",chardata"`
}

type meiWork struct {
	Titles       []meiTitle      `xml:"title"`
	Identifiers  []meiIdentifier `xml:"identifier"`
	CreationDate *meiDate        `xml:"creation>date"`
	Contributors []meiPersName   `xml:"contributor>persName"`
	History      []string        `xml:"history>p"`
	Languages    []meiLanguage   `xml:"langUsage>language"`
}

type meiRoot struct {
	XMLName xml.Name  `xml:"mei"`
	Works   []meiWork `xml:"meiHead>workList>work"`
}

type contributor struct {
	Name      string
	Role      string
	IsPrimary bool
}

func main() {
	var (
		configPath = flag.String("config", "config/config.yaml", "Path to the YAML config file")
		save       = flag.Bool("save", false, "Write the extracted work to the database")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: seedmei [flags] <mei-url-or-file>")
		os.Exit(1)
	}
	source := flag.Arg(0)

	data, err := fetch(source)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fetch MEI document: %v\n", err)
		os.Exit(1)
	}

	payload, contributors, err := transformMEI(data, source)
	if err != nil {
		fmt.Fprintf(os.Stderr, "transform MEI document: %v\n", err)
		os.Exit(1)
	}

	out, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "encode payload: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Extracted work:")
	fmt.Println(string(out))

	if !*save {
		return
	}

	_ = godotenv.Load()
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	log, err := logger.New(cfg.Server.Mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	db, err := supabase.New(supabase.Config{URL: cfg.Supabase.URL, ServiceKey: cfg.Supabase.ServiceKey})
	if err != nil {
		log.Fatal("init supabase client", "error", err)
	}
	st := store.New(db, log)

	ctx := context.Background()
	work, err := seed(ctx, st, payload, contributors)
	if err != nil {
		log.Fatal("seed work", "error", err)
	}
	fmt.Printf("Work created with ID: %s\n", work.ID)
}

// fetch loads the MEI document from an HTTP(S) URL or a local path.
func fetch(source string) ([]byte, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		resp, err := http.Get(source)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("unexpected status %d fetching %s", resp.StatusCode, source)
		}
		return io.ReadAll(resp.Body)
	}
	return os.ReadFile(filepath.Clean(source))
}

// transformMEI extracts the first work of the document into a create
// payload, plus the contributor list that seed resolves into credits.
func transformMEI(data []byte, source string) (*model.WorkCreate, []contributor, error) {
	var root meiRoot
	if err := xml.Unmarshal(data, &root); err != nil {
		return nil, nil, fmt.Errorf("parse MEI: %w", err)
	}
	if len(root.Works) == 0 {
		return nil, nil, errors.New("no <work> element found in MEI document")
	}
	work := root.Works[0]

	var primaryTitle string
	titles := make([]map[string]any, 0, len(work.Titles))
	for _, t := range work.Titles {
		value := strings.TrimSpace(t.Value)
		if value == "" {
			continue
		}
		if t.Type == "" && primaryTitle == "" {
			primaryTitle = value
		}
		titleType := t.Type
		if titleType == "" {
			titleType = "primary"
		}
		titles = append(titles, map[string]any{
			"title":    value,
			"language": t.Lang,
			"type":     titleType,
		})
	}
	if primaryTitle == "" {
		return nil, nil, errors.New("MEI work carries no primary title")
	}

	identifiers := make([]map[string]any, 0, len(work.Identifiers))
	for _, id := range work.Identifiers {
		value := strings.TrimSpace(id.Value)
		if value == "" {
			continue
		}
		identifiers = append(identifiers, map[string]any{
			"label": id.Label,
			"value": value,
		})
	}

	var startYear, endYear int
	if d := work.CreationDate; d != nil {
		startYear = firstYear(d.NotBefore, d.StartDate)
		endYear = firstYear(d.NotAfter, d.EndDate)
	}

	var language *string
	if len(work.Languages) > 0 {
		if lang := work.Languages[0].ID; lang != "" {
			language = &lang
		} else if lang := strings.TrimSpace(work.Languages[0].Value); lang != "" {
			language = &lang
		}
	}

	var notes *string
	if len(work.History) > 0 {
		history := strings.TrimSpace(strings.Join(work.History, "\n"))
		if history != "" {
			notes = &history
		}
	}

	contributors := make([]contributor, 0, len(work.Contributors))
	for _, p := range work.Contributors {
		name := strings.TrimSpace(p.Value)
		if name == "" {
			continue
		}
		contributors = append(contributors, contributor{
			Name:      name,
			Role:      strings.TrimSpace(p.Role),
			IsPrimary: p.Role == "composer",
		})
	}

	payload := &model.WorkCreate{
		Title:           primaryTitle,
		Language:        language,
		Titles:          titles,
		Identifiers:     identifiers,
		OriginYearStart: startYear,
		OriginYearEnd:   endYear,
		Notes:           notes,
		ExternalLinks: []model.WorkExternalLinkCreate{{
			Label:          "Catalogue of Carl Nielsen's Works",
			URL:            source,
			SourceVerified: true,
		}},
	}
	return payload, contributors, nil
}

// firstYear picks the first parseable leading year out of the candidate
// date attributes.
func firstYear(candidates ...string) int {
	for _, c := range candidates {
		if c == "" {
			continue
		}
		if year, err := strconv.Atoi(strings.SplitN(c, "-", 2)[0]); err == nil {
			return year
		}
	}
	return 0
}

// seed resolves contributors into person credits and creates the work.
func seed(ctx context.Context, st *store.Store, payload *model.WorkCreate, contributors []contributor) (*model.Work, error) {
	for _, c := range contributors {
		matches, err := st.SearchPersons(ctx, c.Name)
		if err != nil {
			return nil, fmt.Errorf("search person %q: %w", c.Name, err)
		}

		var personID string
		if len(matches) == 0 {
			person, err := st.CreatePerson(ctx, &model.PersonCreate{LegalName: c.Name})
			if err != nil {
				return nil, fmt.Errorf("create person %q: %w", c.Name, err)
			}
			personID = person.ID
		} else {
			// Multiple matches are possible; take the best ranked one.
			personID = matches[0].ID
		}

		var role *string
		if c.Role != "" {
			r := c.Role
			role = &r
		}
		payload.Credits = append(payload.Credits, model.WorkCreditCreate{
			PersonID:  personID,
			Role:      role,
			IsPrimary: c.IsPrimary,
		})
	}

	return st.CreateWork(ctx, payload)
}

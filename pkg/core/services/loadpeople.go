package services

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/jakechorley/space-allocator/pkg/core/model"
	"github.com/jakechorley/space-allocator/pkg/core/registry"
)

// personLine matches "first last role [accommodation]" with role one of
// fellow/f/staff/s and accommodation one of yes/y/no/n, case-insensitive.
var personLine = regexp.MustCompile(`(?i)^(\w+)\s+(\w+)\s+(fellow|staff|f|s)(?:\s+(yes|y|no|n))?$`)

// LoadPeopleResult reports the outcome of a bulk import.
type LoadPeopleResult struct {
	// Loaded holds one entry per valid line, in file order
	Loaded []*registry.AddPersonResult

	// Ignored holds the malformed lines that were skipped
	Ignored []string
}

// LoadPeople imports people from a text file, one person per line. Each
// valid line becomes an AddPerson call and inherits its allocation side
// effects. Malformed lines are skipped and reported, not fatal.
func LoadPeople(reg *registry.Registry, logger *zap.Logger, path string) (*LoadPeopleResult, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %q", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("read people file: %w", err)
	}

	if strings.TrimSpace(string(content)) == "" {
		return nil, fmt.Errorf("%w: %q", ErrEmptyFile, path)
	}

	logger.Debug("Importing people", zap.String("path", path))

	result := &LoadPeopleResult{}
	for _, raw := range strings.Split(string(content), "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		match := personLine.FindStringSubmatch(line)
		if match == nil {
			logger.Info("Ignoring badly formatted line", zap.String("line", line))
			result.Ignored = append(result.Ignored, line)
			continue
		}

		wants, err := model.ParseAccommodation(match[4])
		if err != nil {
			return nil, err
		}

		added, err := reg.AddPerson(match[1], match[2], match[3], wants)
		if err != nil {
			return nil, err
		}
		logger.Debug("Imported person",
			zap.String("name", added.Person.FullName()),
			zap.String("role", string(added.Person.Role)))
		result.Loaded = append(result.Loaded, added)
	}

	if len(result.Loaded) == 0 {
		// Every line was filtered out
		return nil, fmt.Errorf("%w: %q", ErrMalformedFile, path)
	}

	logger.Info("People imported",
		zap.Int("loaded", len(result.Loaded)),
		zap.Int("ignored", len(result.Ignored)))
	return result, nil
}

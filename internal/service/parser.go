package service

import (
	"strings"

	"wordquiz/internal/domain"
)

const pairSeparator = "-"

// ParseWordPairs parses /add payload into word pairs.
//
// Multi-line input is split by lines, single-line input by commas and semicolons.
// Blank segments are skipped but still counted in positions. Every other segment
// must look like "source - translation"; the first hyphen separates the two parts.
// exists reports whether a source word is already in the vocabulary. Pairs inside
// the same payload are not checked against each other.
func ParseWordPairs(raw string, exists func(source string) bool) ([]domain.WordPair, []*domain.ValidationError) {
	var (
		added []domain.WordPair
		errs  []*domain.ValidationError
	)

	for i, segment := range splitSegments(raw) {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}

		pair, err := parseSegment(segment, exists)
		if err != nil {
			err.Position = i + 1
			errs = append(errs, err)
			continue
		}
		added = append(added, pair)
	}

	return added, errs
}

func splitSegments(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	if strings.Contains(raw, "\n") {
		return strings.Split(raw, "\n")
	}
	return strings.Split(strings.ReplaceAll(raw, ";", ","), ",")
}

func parseSegment(segment string, exists func(string) bool) (domain.WordPair, *domain.ValidationError) {
	source, target, found := strings.Cut(segment, pairSeparator)
	if !found {
		return domain.WordPair{}, &domain.ValidationError{Segment: segment, Err: domain.ErrMissingSeparator}
	}

	source = strings.TrimSpace(source)
	target = strings.TrimSpace(target)

	if source == "" {
		return domain.WordPair{}, &domain.ValidationError{Segment: segment, Err: domain.ErrMissingSource}
	}
	if target == "" {
		return domain.WordPair{}, &domain.ValidationError{Segment: segment, Source: source, Err: domain.ErrMissingTranslation}
	}
	if exists != nil && exists(source) {
		return domain.WordPair{}, &domain.ValidationError{Segment: segment, Source: source, Err: domain.ErrDuplicateWord}
	}

	return domain.WordPair{Source: source, Target: target}, nil
}

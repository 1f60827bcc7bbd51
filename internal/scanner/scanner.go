// Package scanner finds transaction records in the line sequence of a
// statement.
//
// A record starts on a line that holds a date ("15 ene 2024") and one of the
// kind tags. Its amount is looked up in a window of at most WindowSize lines
// starting at that line; the lines visited on the way make up the
// description. The cursor always moves one line at a time, so lines inside a
// window can still start records of their own.
package scanner

import (
	"regexp"
	"strings"

	"fjacquet/extracto/internal/currencyutils"
	"fjacquet/extracto/internal/logging"
	"fjacquet/extracto/internal/models"
	"fjacquet/extracto/internal/textutils"
)

// WindowSize is the number of lines, start line included, searched for an
// amount.
const WindowSize = 5

// traceDescriptionRunes bounds the description printed in per-record traces.
const traceDescriptionRunes = 50

var (
	datePattern   = regexp.MustCompile(`(?i)(\d{1,2}\s+(?:ene|feb|mar|abr|may|jun|jul|ago|sep|oct|nov|dic)\s+\d{4})`)
	amountPattern = regexp.MustCompile(`([+-]?\$\s*[\d.,]+)`)

	// kindTags is checked in order; the first tag found on the line wins.
	kindTags = []models.Kind{models.KindCredit, models.KindDebit}
)

// Scanner turns statement lines into records.
type Scanner struct {
	logger logging.Logger
}

// New returns a Scanner that reports through logger.
func New(logger logging.Logger) *Scanner {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Scanner{logger: logger}
}

// Scan walks lines and returns the records found, in document order. The
// records carry DateOriginal only; Date is left for the date normalizer.
// Records whose amount cannot be converted are logged and skipped.
func (s *Scanner) Scan(lines []string) []models.TransactionRecord {
	var records []models.TransactionRecord
	dropped := 0

	for i := 0; i < len(lines); i++ {
		rec, ok, err := s.scanAt(lines, i)
		if err != nil {
			dropped++
			s.logger.WithError(err).Warn("Dropping record with unreadable amount",
				logging.F(logging.FieldLine, i+1))
			continue
		}
		if ok {
			records = append(records, rec)
			s.logger.Debug("Transaction found",
				logging.F(logging.FieldDate, rec.DateOriginal),
				logging.F(logging.FieldKind, rec.Kind.String()),
				logging.F(logging.FieldDescription, textutils.Truncate(rec.Description, traceDescriptionRunes)),
				logging.F(logging.FieldAmount, rec.Amount.StringFixed(currencyutils.MinorUnits)))
		}
	}

	s.logger.Info("Scan finished",
		logging.F(logging.FieldCount, len(records)),
		logging.F(logging.FieldDropped, dropped),
		logging.F(logging.FieldLine, len(lines)))
	return records
}

// scanAt tries to build a record starting at lines[i]. ok is false when the
// line does not start a record or no amount was found in its window.
func (s *Scanner) scanAt(lines []string, i int) (models.TransactionRecord, bool, error) {
	start := lines[i]
	date := datePattern.FindString(start)
	if date == "" {
		return models.TransactionRecord{}, false, nil
	}
	kind, ok := kindOf(start)
	if !ok {
		return models.TransactionRecord{}, false, nil
	}

	var parts []string
	rawAmount := ""
	end := min(i+WindowSize, len(lines))

	for j := i; j < end; j++ {
		line := lines[j]

		if matches := amountPattern.FindAllString(line, -1); len(matches) > 0 {
			// The last figure on the line is the movement amount on this layout.
			rawAmount = matches[len(matches)-1]
			rest := strings.ReplaceAll(stripMarkers(line), rawAmount, "")
			if rest = strings.TrimSpace(rest); rest != "" {
				parts = append(parts, rest)
			}
			break
		}

		text := line
		if j == i {
			text = stripMarkers(line)
		}
		if datePattern.MatchString(text) {
			continue
		}
		if text = strings.TrimSpace(text); text != "" {
			parts = append(parts, text)
		}
	}

	if rawAmount == "" {
		return models.TransactionRecord{}, false, nil
	}

	amount, err := currencyutils.ParseStatementAmount(rawAmount)
	if err != nil {
		return models.TransactionRecord{}, false, err
	}

	return models.TransactionRecord{
		DateOriginal: date,
		Kind:         kind,
		Description:  textutils.CollapseWhitespace(strings.Join(parts, " ")),
		Amount:       amount,
	}, true, nil
}

// IsRecordStart reports whether line holds both a date and a kind tag.
func IsRecordStart(line string) bool {
	if !datePattern.MatchString(line) {
		return false
	}
	_, ok := kindOf(line)
	return ok
}

func kindOf(line string) (models.Kind, bool) {
	for _, k := range kindTags {
		if strings.Contains(line, string(k)) {
			return k, true
		}
	}
	return "", false
}

// stripMarkers removes every date match and both kind tags from line.
func stripMarkers(line string) string {
	out := datePattern.ReplaceAllString(line, "")
	for _, k := range kindTags {
		out = strings.ReplaceAll(out, string(k), "")
	}
	return out
}

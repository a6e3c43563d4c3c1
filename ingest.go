// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package analyzer

import (
	"bufio"
	"bytes"
	"io"
	"time"

	"github.com/molecula/analyzer/errors"
	"github.com/molecula/analyzer/logger"
)

// MaxSizeHint bounds the records preallocated for a pass.
const MaxSizeHint = 1 << 26

// IngestOptions controls a pass over the input.
type IngestOptions struct {
	// Recidivists keeps only re-admissions: the earliest admission of each
	// subject is withheld.
	Recidivists bool

	Filter Filter

	// SizeHint is the expected number of accepted records, clamped to
	// [0, MaxSizeHint].
	SizeHint int

	Logger logger.Logger
	Stats  *Stats
}

// Ingestion is the result of a pass over the input.
type Ingestion struct {
	Records      []Record
	Distribution *Distribution

	// Lines is the number of data lines read, header excluded.
	Lines int
	// Skipped lines could not be decoded.
	Skipped int
	// Withheld records were the earliest admission of their subject.
	Withheld int
	// Rejected records failed the validity or attribute filters.
	Rejected int
}

// Ingest reads tab-separated records from r in a single pass. The first line
// is a header and is ignored. Lines that fail to decode are logged and
// skipped; a read failure aborts the pass with an errors.ErrStream error.
func Ingest(r io.Reader, opt IngestOptions) (*Ingestion, error) {
	log := opt.Logger
	if log == nil {
		log = logger.NopLogger
	}
	stats := opt.Stats
	if stats == nil {
		stats = NewStats()
	}
	hint := opt.SizeHint
	if hint < 0 {
		hint = 0
	} else if hint > MaxSizeHint {
		hint = MaxSizeHint
	}
	start := time.Now()

	ing := &Ingestion{
		Records:      make([]Record, 0, hint),
		Distribution: NewDistribution(),
	}
	var reducer *RecidivistReducer
	if opt.Recidivists {
		reducer = NewRecidivistReducer()
	}

	lr := newLineReader(r)
	if _, err := lr.readLine(); err == io.EOF {
		return ing, nil
	} else if err != nil {
		return nil, errors.Wrap(errors.WithCode(err, errors.ErrStream), "reading header")
	}

	fields := make([][]byte, 0, ColumnCount+1)
	for {
		line, err := lr.readLine()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, errors.Wrapf(errors.WithCode(err, errors.ErrStream), "reading line %d", ing.Lines+1)
		}
		ing.Lines++
		stats.Lines.Inc()

		fields = splitFields(fields[:0], line)
		id := fields[0]
		rec, err := DecodeRecord(fields[1:])
		if err != nil {
			ing.Skipped++
			stats.Skipped.Inc()
			log.Warnf("invalid record at line %d: %v\n%q", ing.Lines, err, line)
			continue
		}

		if reducer != nil {
			var ok bool
			if rec, ok = reducer.Reduce(id, rec); !ok {
				ing.Withheld++
				stats.Withheld.Inc()
				continue
			}
		}

		if !opt.Filter.Accept(&rec) {
			ing.Rejected++
			stats.Rejected.Inc()
			continue
		}

		ing.Records = append(ing.Records, rec)
		ing.Distribution.Insert(&rec)
		stats.Accepted.Inc()
	}

	elapsed := time.Since(start)
	stats.ObservePhase(PhaseImport, elapsed)
	log.Infof("Importing dataset took %v", elapsed)
	log.Debugf("read %d lines: %d accepted, %d skipped, %d withheld, %d rejected",
		ing.Lines, len(ing.Records), ing.Skipped, ing.Withheld, ing.Rejected)
	return ing, nil
}

// splitFields appends the tab-separated fields of line to dst. The fields
// alias line.
func splitFields(dst [][]byte, line []byte) [][]byte {
	for {
		i := bytes.IndexByte(line, '\t')
		if i < 0 {
			return append(dst, line)
		}
		dst = append(dst, line[:i])
		line = line[i+1:]
	}
}

// lineReader reads raw lines, reusing its buffer between calls.
type lineReader struct {
	r   *bufio.Reader
	buf []byte
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{r: bufio.NewReaderSize(r, 1<<20)}
}

// readLine returns the next line without its terminator. The line is only
// valid until the next call. It returns io.EOF once the input is exhausted;
// a last line without terminator is still returned.
func (lr *lineReader) readLine() ([]byte, error) {
	lr.buf = lr.buf[:0]
	for {
		chunk, err := lr.r.ReadSlice('\n')
		lr.buf = append(lr.buf, chunk...)
		if err == bufio.ErrBufferFull {
			continue
		} else if err == io.EOF {
			if len(lr.buf) == 0 {
				return nil, io.EOF
			}
			break
		} else if err != nil {
			return nil, err
		}
		break
	}
	line := lr.buf
	if n := len(line); n > 0 && line[n-1] == '\n' {
		line = line[:n-1]
	}
	if n := len(line); n > 0 && line[n-1] == '\r' {
		line = line[:n-1]
	}
	return line, nil
}

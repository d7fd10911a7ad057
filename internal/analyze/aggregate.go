// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package analyze tabulates citation statistics over loaded exports:
// grouped aggregation across files, per-file summaries, per-year
// trends, and cross-file overlap detection.
package analyze

import (
	"errors"
	"sort"

	"github.com/mlukac/citetab/internal/convention"
	"github.com/mlukac/citetab/pkg/types"
)

// ErrEmptyInput is returned when aggregation is requested over no
// input files.
var ErrEmptyInput = errors.New("no input files to aggregate")

// Input pairs a parsed filename key with the records loaded from that
// file.
type Input struct {
	Key     convention.Key
	Records []types.Record
}

// GroupFunc projects a filename key onto a bucket identifier. Inputs
// whose keys project to the same identifier merge into one bucket.
type GroupFunc func(convention.Key) string

// MetricFunc projects a record onto the value summed per bucket.
type MetricFunc func(types.Record) float64

// Bucket accumulates the count and metric sum for one group.
type Bucket struct {
	ID    string  `json:"id" yaml:"id"`
	Count int     `json:"count" yaml:"count"`
	Sum   float64 `json:"sum" yaml:"sum"`
}

// Mean returns the metric mean over the bucket, or zero for an empty
// bucket.
func (b Bucket) Mean() float64 {
	if b.Count == 0 {
		return 0
	}
	return b.Sum / float64(b.Count)
}

// Result holds aggregation buckets ordered by first appearance of
// their identifier in the input.
type Result struct {
	Buckets []Bucket `json:"buckets" yaml:"buckets"`
}

// Aggregate groups every record of every input by groupBy(key) and
// accumulates the record count and the sum of metric per bucket. A
// bucket appears only once a record contributes to it, so no zero rows
// are emitted. The result is computed fresh on every call; bucket
// order is deterministic given the input order.
func Aggregate(inputs []Input, groupBy GroupFunc, metric MetricFunc) (Result, error) {
	if len(inputs) == 0 {
		return Result{}, ErrEmptyInput
	}

	index := make(map[string]int) // bucket identifier → position in Buckets
	var buckets []Bucket

	for _, in := range inputs {
		id := groupBy(in.Key)
		for _, rec := range in.Records {
			i, ok := index[id]
			if !ok {
				i = len(buckets)
				index[id] = i
				buckets = append(buckets, Bucket{ID: id})
			}
			buckets[i].Count++
			buckets[i].Sum += metric(rec)
		}
	}

	return Result{Buckets: buckets}, nil
}

// SortBySum reorders buckets by metric sum descending, bucket
// identifier ascending on ties.
func (r *Result) SortBySum() {
	sort.SliceStable(r.Buckets, func(i, j int) bool {
		if r.Buckets[i].Sum != r.Buckets[j].Sum {
			return r.Buckets[i].Sum > r.Buckets[j].Sum
		}
		return r.Buckets[i].ID < r.Buckets[j].ID
	})
}

// ByEngine groups inputs by the search engine that produced them.
func ByEngine(k convention.Key) string { return k.Engine }

// ByFirstKeyword groups inputs by the first keyword of the query.
func ByFirstKeyword(k convention.Key) string { return k.FirstKeyword() }

// ByQuery groups inputs by the full canonical query, engine included.
func ByQuery(k convention.Key) string { return k.String() }

// Citations is the citation-count metric.
func Citations(r types.Record) float64 { return float64(r.Cites) }

// PerPaper counts one per record, for article-count tallies.
func PerPaper(types.Record) float64 { return 1 }

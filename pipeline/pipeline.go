// Copyright 2024 Institute of the Czech National Corpus,
//                Faculty of Arts, Charles University
//   This file is part of DIAFREQ.
//
//  DIAFREQ is free software: you can redistribute it and/or modify
//  it under the terms of the GNU General Public License as published by
//  the Free Software Foundation, either version 3 of the License, or
//  (at your option) any later version.
//
//  DIAFREQ is distributed in the hope that it will be useful,
//  but WITHOUT ANY WARRANTY; without even the implied warranty of
//  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
//  GNU General Public License for more details.
//
//  You should have received a copy of the GNU General Public License
//  along with DIAFREQ.  If not, see <https://www.gnu.org/licenses/>.

package pipeline

import (
	"diafreq/cnf"
	"diafreq/corpsize"
	"diafreq/freqs"
	"diafreq/merror"
	"diafreq/results"
	"diafreq/sampler"
	"diafreq/vocab"
	"diafreq/wordlist"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/czcorpus/cnc-gokit/collections"
	"github.com/rs/zerolog/log"
)

// Args represents the command line arguments of a run
type Args struct {
	Lang            string
	Threshold       int64
	Mode            string
	CorpusSizesPath string
}

// WithDistribution tells whether we should produce frequency
// matched filler lists instead of plain filtered ones.
func (args Args) WithDistribution() bool {
	return args.Mode == ModeWithDistribution
}

func (args Args) Validate() error {
	if err := vocab.ValidateLang(args.Lang); err != nil {
		return err
	}
	if args.Threshold < 0 {
		return merror.InputError{Msg: "threshold must be a non-negative number"}
	}
	if args.CorpusSizesPath == "" {
		return merror.InputError{Msg: "corpus sizes file not specified"}
	}
	return nil
}

// wordLists contains all the word lists derived
// for a model kind
type wordLists struct {
	evaluative         []string
	evaluativeFiltered []string
	fillers            []string
	fillersFiltered    []string
}

// Pipeline produces evaluative and filler adjective lists
// for a language.
type Pipeline struct {
	conf    *cnf.Conf
	runID   string
	loader  *vocab.Loader
	sampler *sampler.Sampler
}

func (p *Pipeline) tagWord(lemma string) string {
	return lemma + "_" + p.conf.PosTag
}

// loadEvaluative loads lemmas of evaluative adjectives
// and turns them into word-tag tokens.
func (p *Pipeline) loadEvaluative(lang string) (*collections.Set[string], error) {
	lemmas, err := wordlist.ReadWords(GenDatasetFilename(p.conf.DatasetsDir, lang))
	if err != nil {
		return nil, fmt.Errorf("failed to load evaluative vocabulary: %w", err)
	}
	ans := collections.NewSet[string]()
	for _, lemma := range lemmas {
		lemma = strings.TrimSpace(lemma)
		if lemma != "" {
			ans.Add(p.tagWord(lemma))
		}
	}
	return ans, nil
}

func sortedSlice(set *collections.Set[string]) []string {
	ans := set.ToSlice()
	slices.Sort(ans)
	return ans
}

func (p *Pipeline) mkWordLists(
	threshold int64,
	shared *collections.Set[string],
	allEval *collections.Set[string],
	vocabs []*vocab.Vocabulary,
) (wordLists, error) {
	var ans wordLists
	tagSuffix := "_" + p.conf.PosTag
	for _, w := range sortedSlice(shared) {
		if allEval.Contains(w) {
			ans.evaluative = append(ans.evaluative, w)

		} else if strings.HasSuffix(w, tagSuffix) {
			ans.fillers = append(ans.fillers, w)
		}
	}
	log.Info().Msg("filtering by frequency")
	evalFiltered, err := freqs.DeleteLowFrequent(ans.evaluative, threshold, vocabs)
	if err != nil {
		return ans, fmt.Errorf("failed to filter evaluative words: %w", err)
	}
	ans.evaluativeFiltered = sortedSlice(evalFiltered)
	fillersFiltered, err := freqs.DeleteLowFrequent(ans.fillers, threshold, vocabs)
	if err != nil {
		return ans, fmt.Errorf("failed to filter fillers: %w", err)
	}
	ans.fillersFiltered = sortedSlice(fillersFiltered)
	return ans, nil
}

// sampleMatched draws fillers matching percentiles of the target words
func (p *Pipeline) sampleMatched(
	targets, fillers []string,
	vocabs []*vocab.Vocabulary,
	corpusSizes []int64,
) (sampler.Result, error) {
	kind := p.conf.Sampling.PercentileKind
	targetPerc, err := freqs.PercentileDict(targets, vocabs, corpusSizes, kind)
	if err != nil {
		return sampler.Result{}, fmt.Errorf("failed to get percentiles of target words: %w", err)
	}
	fillerPerc, err := freqs.PercentileDict(fillers, vocabs, corpusSizes, kind)
	if err != nil {
		return sampler.Result{}, fmt.Errorf("failed to get percentiles of fillers: %w", err)
	}
	return p.sampler.Sample(targetPerc, fillerPerc), nil
}

func (p *Pipeline) writeSampled(
	path string,
	res sampler.Result,
	numTargets int,
) (*results.SampledList, error) {
	if err := wordlist.Write(path, res.SortedWords()); err != nil {
		return nil, err
	}
	if len(res.Missing) > 0 {
		log.Warn().
			Str("file", path).
			Int("numMissing", len(res.Missing)).
			Int("numTargets", numTargets).
			Msg("not enough fillers for some target words")
	}
	return &results.SampledList{
		NumTargets: numTargets,
		Size:       res.Words.Size(),
		Missing:    res.Missing,
	}, nil
}

func (p *Pipeline) runKind(
	args Args,
	kind string,
	decades []int,
	corpusSizes []int64,
	allEval *collections.Set[string],
) (*results.RunSummary, error) {
	vocabs, err := p.loader.LoadAll(args.Lang, kind, decades)
	if err != nil {
		return nil, err
	}
	shared := vocab.Intersect(vocabs)
	log.Info().
		Str("kind", kind).
		Int("size", shared.Size()).
		Msg("size of shared vocabulary")

	lists, err := p.mkWordLists(args.Threshold, shared, allEval, vocabs)
	if err != nil {
		return nil, err
	}
	summary := &results.RunSummary{
		RunID:           p.runID,
		Created:         time.Now(),
		Lang:            args.Lang,
		ModelKind:       kind,
		Threshold:       args.Threshold,
		Mode:            args.Mode,
		Decades:         decades,
		CorpusSizes:     corpusSizes,
		SharedVocabSize: shared.Size(),
		Evaluative: results.ListSizes{
			Full:     len(lists.evaluative),
			Filtered: len(lists.evaluativeFiltered),
		},
		Fillers: results.ListSizes{
			Full:     len(lists.fillers),
			Filtered: len(lists.fillersFiltered),
		},
	}
	outDir := p.conf.OutputDir
	withDistrib := args.WithDistribution()

	if withDistrib {
		log.Info().Str("kind", kind).Msg("sampling proper distribution")
		res, err := p.sampleMatched(lists.evaluative, lists.fillers, vocabs, corpusSizes)
		if err != nil {
			return nil, err
		}
		summary.Sampled, err = p.writeSampled(
			GenFillersFilename(outDir, args.Lang, kind, true), res, len(lists.evaluative))
		if err != nil {
			return nil, err
		}
		res, err = p.sampleMatched(
			lists.evaluativeFiltered, lists.fillersFiltered, vocabs, corpusSizes)
		if err != nil {
			return nil, err
		}
		summary.SampledFiltered, err = p.writeSampled(
			GenFilteredFillersFilename(outDir, args.Lang, kind, true, args.Threshold),
			res,
			len(lists.evaluativeFiltered),
		)
		if err != nil {
			return nil, err
		}

	} else {
		if err := wordlist.Write(
			GenFillersFilename(outDir, args.Lang, kind, false), lists.fillers); err != nil {
			return nil, err
		}
		if err := wordlist.Write(
			GenFilteredFillersFilename(outDir, args.Lang, kind, false, args.Threshold),
			lists.fillersFiltered,
		); err != nil {
			return nil, err
		}
	}

	if err := wordlist.Write(
		GenEvaluativeFilename(outDir, args.Lang, kind), lists.evaluative); err != nil {
		return nil, err
	}
	if err := wordlist.Write(
		GenFilteredEvaluativeFilename(outDir, args.Lang, kind, args.Threshold),
		lists.evaluativeFiltered,
	); err != nil {
		return nil, err
	}
	if err := summary.WriteJSON(GenSummaryFilename(outDir, args.Lang, kind)); err != nil {
		return nil, err
	}
	return summary, nil
}

// Run processes all the enabled model kinds of a language.
// Any failure is fatal for the whole run - there is no partial
// result except for filler sampling where target words without
// enough fillers are just reported.
func (p *Pipeline) Run(args Args) (ans []*results.RunSummary, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = merror.PanicValueToErr(r)
		}
	}()
	if err = args.Validate(); err != nil {
		return
	}
	sizes, err := corpsize.Load(args.CorpusSizesPath)
	if err != nil {
		return
	}
	decades := p.conf.Decades()
	corpusSizes, err := sizes.Sizes(args.Lang, decades)
	if err != nil {
		return
	}
	log.Info().Msg("loading evaluative vocabulary")
	allEval, err := p.loadEvaluative(args.Lang)
	if err != nil {
		return
	}
	for _, kind := range p.conf.ModelKinds() {
		summary, kerr := p.runKind(args, kind, decades, corpusSizes, allEval)
		if kerr != nil {
			err = fmt.Errorf("failed to process %s models: %w", kind, kerr)
			return
		}
		ans = append(ans, summary)
	}
	return
}

func New(conf *cnf.Conf, runID string) *Pipeline {
	var cache *vocab.Cache
	if conf.VocabCacheDir != "" {
		cache = vocab.NewCache(conf.VocabCacheDir)
	}
	return &Pipeline{
		conf:    conf,
		runID:   runID,
		loader:  vocab.NewLoader(conf.ModelsDir, cache),
		sampler: sampler.New(conf.Sampling),
	}
}

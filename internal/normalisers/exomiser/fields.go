package exomiser

import "github.com/custodia-labs/exoreport/internal/core/domain"

// Candidate source keys per target field, in priority order.
// The order mirrors what has been observed across Exomiser releases and
// has not been confirmed against a published schema.
var (
	geneRankKeys           = []string{"rank", "geneRank"}
	geneSymbolKeys         = []string{"geneSymbol", "gene.geneSymbol"}
	geneCombinedScoreKeys  = []string{"combinedScore", "exomiserGeneCombinedScore"}
	genePhenotypeScoreKeys = []string{"phenotypeScore", "exomiserGenePhenoScore"}
	geneVariantScoreKeys   = []string{"variantScore", "exomiserGeneVariantScore"}

	variantRankKeys            = []string{"rank"}
	variantGeneSymbolKeys      = []string{"geneSymbol"}
	variantContigKeys          = []string{"contig"}
	variantStartKeys           = []string{"start"}
	variantEndKeys             = []string{"end"}
	variantRefKeys             = []string{"ref"}
	variantAltKeys             = []string{"alt"}
	variantFunctionalClassKeys = []string{"functionalClass", "functionalAnnotation"}
)

// Collection keys tried in order; the first non-empty array wins.
var (
	GeneCollectionKeys    = []string{"genes", "geneResults"}
	VariantCollectionKeys = []string{"variants", "variantResults"}
)

// NormaliseGene projects a raw gene-ranking entry onto a GeneRecord.
func NormaliseGene(rec domain.RawRecord) domain.GeneRecord {
	return domain.GeneRecord{
		Rank:           ResolveField(rec, geneRankKeys),
		GeneSymbol:     ResolveField(rec, geneSymbolKeys),
		CombinedScore:  ResolveField(rec, geneCombinedScoreKeys),
		PhenotypeScore: ResolveField(rec, genePhenotypeScoreKeys),
		VariantScore:   ResolveField(rec, geneVariantScoreKeys),
	}
}

// NormaliseVariant projects a raw variant-ranking entry onto a VariantRecord.
func NormaliseVariant(rec domain.RawRecord) domain.VariantRecord {
	return domain.VariantRecord{
		Rank:            ResolveField(rec, variantRankKeys),
		GeneSymbol:      ResolveField(rec, variantGeneSymbolKeys),
		Contig:          ResolveField(rec, variantContigKeys),
		Start:           ResolveField(rec, variantStartKeys),
		End:             ResolveField(rec, variantEndKeys),
		Ref:             ResolveField(rec, variantRefKeys),
		Alt:             ResolveField(rec, variantAltKeys),
		FunctionalClass: ResolveField(rec, variantFunctionalClassKeys),
	}
}

// Collection returns the records under the first key holding a non-empty
// array. Missing keys and non-array values count as empty. Array elements
// that are not objects are dropped and counted in skipped.
func Collection(doc domain.RawRecord, keys []string) (records []domain.RawRecord, skipped int) {
	for _, key := range keys {
		items, ok := doc[key].([]any)
		if !ok || len(items) == 0 {
			continue
		}
		records = make([]domain.RawRecord, 0, len(items))
		for _, item := range items {
			obj, ok := asObject(item)
			if !ok {
				skipped++
				continue
			}
			records = append(records, domain.RawRecord(obj))
		}
		return records, skipped
	}
	return nil, 0
}

package stylo

// DefaultAuthor labels documents whose author was not supplied.
const DefaultAuthor = "Unknown"

// FeatureSet holds the statistics extracted from one document. Values are
// set once by the extractor and never modified afterwards.
type FeatureSet struct {
	Author string
	Title  string

	LexicalDiversity float64
	MeanWordLen      float64
	MeanSentenceLen  float64
	StdSentenceLen   float64
	MeanParagraphLen float64
	DocumentLen      int

	// Occurrences per 1000 tokens.
	Commas       float64
	Semicolons   float64
	Quotes       float64
	Exclamations float64
	Colons       float64
	Dashes       float64
	MDashes      float64
	Ands         float64
	Buts         float64
	Howevers     float64
	Ifs          float64
	Thats        float64
	Mores        float64
	Musts        float64
	Mights       float64
	This         float64
	Verys        float64
}

// Field is one named value of a FeatureSet. Value is a string, int, or
// float64.
type Field struct {
	Name  string
	Value any
}

// Field names as they appear in tabular output.
const (
	FieldAuthor           = "author"
	FieldTitle            = "title"
	FieldLexicalDiversity = "lexical_diversity"
	FieldMeanWordLen      = "mean_word_len"
	FieldMeanSentenceLen  = "mean_sentence_len"
	FieldStdSentenceLen   = "std_sentence_len"
	FieldMeanParagraphLen = "mean_paragraph_len"
	FieldDocumentLen      = "document_len"
	FieldCommas           = "commas"
	FieldSemicolons       = "semicolons"
	FieldQuotes           = "quotes"
	FieldExclamations     = "exclamations"
	FieldColons           = "colons"
	FieldDashes           = "dashes"
	FieldMDashes          = "mdashes"
	FieldAnds             = "ands"
	FieldButs             = "buts"
	FieldHowevers         = "howevers"
	FieldIfs              = "ifs"
	FieldThats            = "thats"
	FieldMores            = "mores"
	FieldMusts            = "musts"
	FieldMights           = "mights"
	FieldThis             = "this"
	FieldVerys            = "verys"
)

// Fields returns every named value of the set in extraction order.
func (fs FeatureSet) Fields() []Field {
	return []Field{
		{FieldAuthor, fs.Author},
		{FieldTitle, fs.Title},
		{FieldLexicalDiversity, fs.LexicalDiversity},
		{FieldMeanWordLen, fs.MeanWordLen},
		{FieldMeanSentenceLen, fs.MeanSentenceLen},
		{FieldStdSentenceLen, fs.StdSentenceLen},
		{FieldMeanParagraphLen, fs.MeanParagraphLen},
		{FieldDocumentLen, fs.DocumentLen},
		{FieldCommas, fs.Commas},
		{FieldSemicolons, fs.Semicolons},
		{FieldQuotes, fs.Quotes},
		{FieldExclamations, fs.Exclamations},
		{FieldColons, fs.Colons},
		{FieldDashes, fs.Dashes},
		{FieldMDashes, fs.MDashes},
		{FieldAnds, fs.Ands},
		{FieldButs, fs.Buts},
		{FieldHowevers, fs.Howevers},
		{FieldIfs, fs.Ifs},
		{FieldThats, fs.Thats},
		{FieldMores, fs.Mores},
		{FieldMusts, fs.Musts},
		{FieldMights, fs.Mights},
		{FieldThis, fs.This},
		{FieldVerys, fs.Verys},
	}
}

// FieldNames returns the names of every FeatureSet field in extraction order.
func FieldNames() []string {
	fields := FeatureSet{}.Fields()
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	return names
}

// WithAuthor returns a copy of fs labelled with author.
func (fs FeatureSet) WithAuthor(author string) FeatureSet {
	fs.Author = author
	return fs
}

// markerTerms are the tokens whose per-thousand rates are reported.
var markerTerms = []string{
	",", ";", "\"", "!", ":", "-", "--",
	"and", "but", "however", "if", "that", "more", "must", "might", "this", "very",
}

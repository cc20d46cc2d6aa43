package models

const (
	HyphenBreakRegex   = `(\w+)-\n(\w+)`
	LowercaseWrapRegex = `\n([a-z])`
	BlankLineRunRegex  = `\n\s*\n`

	// SourcesMarker is the literal the answer prompt instructs the model to
	// emit before its citation list, and the literal the parser splits on.
	SourcesMarker = "SOURCES: "
)

var (
	AnswerPromptTemplate = `Create a final answer to the given question using the provided document excerpts (given in no particular order) as references. ALWAYS end your answer with a "SOURCES" line listing only the minimal set of sources needed to answer the question, as a comma-separated list of the source labels given below. If the answer is not contained in the excerpts, state that you do not know; do not attempt to fabricate an answer, and leave the SOURCES line empty.

---------

QUESTION: What is the purpose of ARPA-H?
=========
Content: The Advanced Research Projects Agency for Health will drive breakthroughs in cancer, Alzheimer's, diabetes, and more.
Source: Page 1 - Chunk 2
Content: While we're at it, let's make sure every American can get the health care they need.
Source: Page 1 - Chunk 3
=========
FINAL ANSWER: The purpose of ARPA-H is to drive breakthroughs in cancer, Alzheimer's, diabetes, and more.
SOURCES: Page 1 - Chunk 2

---------

QUESTION: %s
=========
%s
=========
FINAL ANSWER:`
)

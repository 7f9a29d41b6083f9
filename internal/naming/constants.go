package naming

// MinPrefixLength is the shortest input that may resolve by unique prefix
const MinPrefixLength = 3

// MinFuzzyLength is the shortest input that may resolve by edit distance
const MinFuzzyLength = 4

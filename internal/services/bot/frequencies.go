package bot

// Alphabet is the guessable letter set
const Alphabet = "abcdefghijklmnopqrstuvwxyz"

// englishFrequencies holds relative English letter frequencies (percent),
// indexed a-z. Higher intelligence weights the letter draw toward this
// table; the absolute scale is irrelevant since draws are normalized over
// the letters still available.
var englishFrequencies = [26]float64{
	8.17,  // a
	1.49,  // b
	2.78,  // c
	4.25,  // d
	12.70, // e
	2.23,  // f
	2.02,  // g
	6.09,  // h
	6.97,  // i
	0.15,  // j
	0.77,  // k
	4.03,  // l
	2.41,  // m
	6.75,  // n
	7.51,  // o
	1.93,  // p
	0.10,  // q
	5.99,  // r
	6.33,  // s
	9.06,  // t
	2.76,  // u
	0.98,  // v
	2.36,  // w
	0.15,  // x
	1.97,  // y
	0.07,  // z
}

// frequencyOf returns the English frequency of a single letter a-z
func frequencyOf(letter byte) float64 {
	return englishFrequencies[letter-'a']
}

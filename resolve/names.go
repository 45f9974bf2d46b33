package resolve

import "strings"

// fillerWords are dropped during name canonicalization. Registry names and
// content-store org names for the same agency differ mostly in these
// organizational suffixes ("Hamilton County EMS" vs "Hamilton County
// Emergency Medical Services").
var fillerWords = map[string]bool{
	"ems": true, "emergency": true, "medical": true, "services": true,
	"service": true, "county": true, "city": true, "fire": true,
	"department": true, "dept": true, "district": true, "rescue": true,
	"agency": true, "authority": true, "division": true, "bureau": true,
	"of": true, "the": true, "inc": true, "llc": true, "co": true,
}

const namePunctuation = ".,&'\"()-/"

// canonicalName reduces an organization name to the tokens that actually
// identify it: case-folded, punctuation stripped, filler words removed,
// whitespace collapsed. Returns "" when nothing identifying remains.
func canonicalName(name string) string {
	words := strings.Fields(strings.ToLower(name))

	kept := make([]string, 0, len(words))
	for _, word := range words {
		cleaned := strings.Trim(word, namePunctuation)
		if cleaned == "" || fillerWords[cleaned] {
			continue
		}
		kept = append(kept, cleaned)
	}

	return strings.Join(kept, " ")
}

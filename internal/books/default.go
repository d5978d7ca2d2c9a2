package books

// defaultBooks is the built-in English table: canonical name plus the
// standard and alternate abbreviations. Deployments that need other
// languages load their own table via Load.
var defaultBooks = []Book{
	{Number: 1, Name: "Genesis", Aliases: []string{"ge", "gen"}},
	{Number: 2, Name: "Exodus", Aliases: []string{"ex", "exod"}},
	{Number: 3, Name: "Leviticus", Aliases: []string{"le", "lev"}},
	{Number: 4, Name: "Numbers", Aliases: []string{"nu", "num"}},
	{Number: 5, Name: "Deuteronomy", Aliases: []string{"de", "deut"}},
	{Number: 6, Name: "Joshua", Aliases: []string{"jos", "josh"}},
	{Number: 7, Name: "Judges", Aliases: []string{"jg", "judg"}},
	{Number: 8, Name: "Ruth", Aliases: []string{"ru"}},
	{Number: 9, Name: "1 Samuel", Aliases: []string{"1 sa", "1 sam"}},
	{Number: 10, Name: "2 Samuel", Aliases: []string{"2 sa", "2 sam"}},
	{Number: 11, Name: "1 Kings", Aliases: []string{"1 ki", "1 kgs"}},
	{Number: 12, Name: "2 Kings", Aliases: []string{"2 ki", "2 kgs"}},
	{Number: 13, Name: "1 Chronicles", Aliases: []string{"1 ch", "1 chr"}},
	{Number: 14, Name: "2 Chronicles", Aliases: []string{"2 ch", "2 chr"}},
	{Number: 15, Name: "Ezra", Aliases: []string{"ezr"}},
	{Number: 16, Name: "Nehemiah", Aliases: []string{"ne", "neh"}},
	{Number: 17, Name: "Esther", Aliases: []string{"es", "esth"}},
	{Number: 18, Name: "Job", Aliases: []string{"job"}},
	{Number: 19, Name: "Psalms", Aliases: []string{"ps", "psalm"}},
	{Number: 20, Name: "Proverbs", Aliases: []string{"pr", "prov"}},
	{Number: 21, Name: "Ecclesiastes", Aliases: []string{"ec", "eccl"}},
	{Number: 22, Name: "Song of Solomon", Aliases: []string{"ca", "song"}},
	{Number: 23, Name: "Isaiah", Aliases: []string{"isa"}},
	{Number: 24, Name: "Jeremiah", Aliases: []string{"jer"}},
	{Number: 25, Name: "Lamentations", Aliases: []string{"la", "lam"}},
	{Number: 26, Name: "Ezekiel", Aliases: []string{"eze", "ezek"}},
	{Number: 27, Name: "Daniel", Aliases: []string{"da", "dan"}},
	{Number: 28, Name: "Hosea", Aliases: []string{"ho", "hos"}},
	{Number: 29, Name: "Joel", Aliases: []string{"joe"}},
	{Number: 30, Name: "Amos", Aliases: []string{"am"}},
	{Number: 31, Name: "Obadiah", Aliases: []string{"ob", "obad"}},
	{Number: 32, Name: "Jonah", Aliases: []string{"jon"}},
	{Number: 33, Name: "Micah", Aliases: []string{"mic"}},
	{Number: 34, Name: "Nahum", Aliases: []string{"na", "nah"}},
	{Number: 35, Name: "Habakkuk", Aliases: []string{"hab"}},
	{Number: 36, Name: "Zephaniah", Aliases: []string{"zep", "zeph"}},
	{Number: 37, Name: "Haggai", Aliases: []string{"hag"}},
	{Number: 38, Name: "Zechariah", Aliases: []string{"zec", "zech"}},
	{Number: 39, Name: "Malachi", Aliases: []string{"mal"}},
	{Number: 40, Name: "Matthew", Aliases: []string{"mt", "matt"}},
	{Number: 41, Name: "Mark", Aliases: []string{"mr", "mk"}},
	{Number: 42, Name: "Luke", Aliases: []string{"lu", "lk"}},
	{Number: 43, Name: "John", Aliases: []string{"joh", "jn"}},
	{Number: 44, Name: "Acts", Aliases: []string{"ac"}},
	{Number: 45, Name: "Romans", Aliases: []string{"ro", "rom"}},
	{Number: 46, Name: "1 Corinthians", Aliases: []string{"1 co", "1 cor"}},
	{Number: 47, Name: "2 Corinthians", Aliases: []string{"2 co", "2 cor"}},
	{Number: 48, Name: "Galatians", Aliases: []string{"ga", "gal"}},
	{Number: 49, Name: "Ephesians", Aliases: []string{"eph"}},
	{Number: 50, Name: "Philippians", Aliases: []string{"php", "phil"}},
	{Number: 51, Name: "Colossians", Aliases: []string{"col"}},
	{Number: 52, Name: "1 Thessalonians", Aliases: []string{"1 th", "1 thess"}},
	{Number: 53, Name: "2 Thessalonians", Aliases: []string{"2 th", "2 thess"}},
	{Number: 54, Name: "1 Timothy", Aliases: []string{"1 ti", "1 tim"}},
	{Number: 55, Name: "2 Timothy", Aliases: []string{"2 ti", "2 tim"}},
	{Number: 56, Name: "Titus", Aliases: []string{"tit"}},
	{Number: 57, Name: "Philemon", Aliases: []string{"phm", "philem"}},
	{Number: 58, Name: "Hebrews", Aliases: []string{"heb"}},
	{Number: 59, Name: "James", Aliases: []string{"jas"}},
	{Number: 60, Name: "1 Peter", Aliases: []string{"1 pe", "1 pet"}},
	{Number: 61, Name: "2 Peter", Aliases: []string{"2 pe", "2 pet"}},
	{Number: 62, Name: "1 John", Aliases: []string{"1 jo", "1 jn"}},
	{Number: 63, Name: "2 John", Aliases: []string{"2 jo", "2 jn"}},
	{Number: 64, Name: "3 John", Aliases: []string{"3 jo", "3 jn"}},
	{Number: 65, Name: "Jude", Aliases: []string{"jude"}},
	{Number: 66, Name: "Revelation", Aliases: []string{"re", "rev"}},
}

// Default returns the built-in English book table.
func Default() *Table {
	t, err := NewTable(defaultBooks)
	if err != nil {
		// Built-in data is fixed at compile time; this cannot happen.
		panic(err)
	}
	return t
}

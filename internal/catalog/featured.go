package catalog

var featured = []Book{
	{
		ID:               "OL26491060M",
		Title:            "The Great Gatsby",
		Authors:          []string{"F. Scott Fitzgerald"},
		FirstPublishYear: 1925,
		Subjects:         []string{"Fiction", "Classic", "American Literature"},
		CoverID:          14811172,
		CoverURL:         "https://covers.openlibrary.org/b/id/14811172-L.jpg",
		Description:      "A classic novel of the Jazz Age, telling the story of the mysterious millionaire Jay Gatsby and his obsession with the beautiful Daisy Buchanan.",
	},
	{
		ID:               "OL234567W",
		Title:            "To Kill a Mockingbird",
		Authors:          []string{"Harper Lee"},
		FirstPublishYear: 1960,
		Subjects:         []string{"Fiction", "Southern Gothic", "Coming-of-age"},
		CoverID:          14351077,
		CoverURL:         "https://covers.openlibrary.org/b/id/14351077-L.jpg",
		Description:      "A gripping story of racial injustice and childhood innocence in the American South, seen through the eyes of young Scout Finch.",
	},
	{
		ID:               "OL345678W",
		Title:            "1984",
		Authors:          []string{"George Orwell"},
		FirstPublishYear: 1949,
		Subjects:         []string{"Dystopian", "Science Fiction", "Political Fiction"},
		CoverID:          15115831,
		CoverURL:         "https://covers.openlibrary.org/b/id/15115831-L.jpg",
		Description:      "A dystopian social science fiction novel that examines the consequences of totalitarianism, mass surveillance, and repressive regimentation.",
	},
	{
		ID:               "OL456789W",
		Title:            "Pride and Prejudice",
		Authors:          []string{"Jane Austen"},
		FirstPublishYear: 1813,
		Subjects:         []string{"Romance", "Classic", "British Literature"},
		CoverID:          14845129,
		CoverURL:         "https://covers.openlibrary.org/b/id/14845129-L.jpg",
		Description:      "A romantic novel that charts the emotional development of protagonist Elizabeth Bennet, who learns the error of making hasty judgments.",
	},
	{
		ID:               "OL567890W",
		Title:            "The Hobbit",
		Authors:          []string{"J.R.R. Tolkien"},
		FirstPublishYear: 1937,
		Subjects:         []string{"Fantasy", "Adventure", "Children's Literature"},
		CoverID:          14627222,
		CoverURL:         "https://covers.openlibrary.org/b/id/14627222-L.jpg",
		Description:      "A fantasy novel about the adventures of hobbit Bilbo Baggins, who is hired as a burglar by a group of dwarves on a quest to reclaim their mountain home.",
	},
	{
		ID:               "OL678901W",
		Title:            "Harry Potter and the Philosopher's Stone",
		Authors:          []string{"J.K. Rowling"},
		FirstPublishYear: 1997,
		Subjects:         []string{"Fantasy", "Young Adult", "Magic"},
		CoverID:          14858822,
		CoverURL:         "https://covers.openlibrary.org/b/id/14858822-L.jpg",
		Description:      "The first novel in the Harry Potter series, following Harry Potter's first year at Hogwarts School of Witchcraft and Wizardry.",
	},
}

// Featured returns the built-in featured list. Callers get their own copy
// and may modify it freely.
func Featured() []Book {
	out := make([]Book, len(featured))
	for i, b := range featured {
		b.Authors = append([]string(nil), b.Authors...)
		b.Subjects = append([]string(nil), b.Subjects...)
		out[i] = b
	}
	return out
}

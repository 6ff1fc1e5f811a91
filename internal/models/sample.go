// ABOUTME: Built-in sample note collection.
// ABOUTME: Seeds an empty store and stands in for unreadable note records.

package models

func price(p float64) *float64 { return &p }

// SampleNotes returns a fresh copy of the built-in sample set.
func SampleNotes() []Note {
	sarah := User{ID: "a1", Name: "Sarah Dev", Email: "sarah@dev.com", Role: RoleAuthor, Avatar: "https://picsum.photos/id/237/100/100"}
	prof := User{ID: "a2", Name: "Prof. Math", Email: "prof@math.com", Role: RoleAuthor, Avatar: "https://picsum.photos/id/20/100/100"}
	guru := User{ID: "a3", Name: "Tech Guru", Email: "tech@guru.com", Role: RoleAuthor, Avatar: "https://picsum.photos/id/60/100/100"}

	return []Note{
		{
			ID:          "n1",
			Title:       "Introduction to React Hooks",
			Description: "A comprehensive guide to useState, useEffect, and custom hooks.",
			Content: `React Hooks are functions that let you "hook into" React state and lifecycle features from function components.

1. useState: Returns a stateful value, and a function to update it.
2. useEffect: Accepts a function that contains imperative, possibly effectful code.
3. useContext: Accepts a context object and returns the current context value.

Rules of Hooks:
- Only Call Hooks at the Top Level
- Only Call Hooks from React Functions`,
			Course:    "Web Development",
			Year:      "2024",
			Subject:   "Frontend",
			Tags:      []string{"React", "JavaScript", "Frontend"},
			Thumbnail: "https://picsum.photos/seed/react/400/250",
			Author:    sarah,
			Downloads: 1205,
			Likes:     342,
			CreatedAt: "2024-03-10",
			Comments:  []Comment{},
			FileName:  "react_hooks_intro.pdf",
			MimeType:  "application/pdf",
		},
		{
			ID:          "n2",
			Title:       "Advanced Calculus: Limits & Derivatives",
			Description: "Detailed notes on limits, continuity, and differentiation rules.",
			Content: `A limit is the value that a function (or sequence) approaches as the input (or index) approaches some value.

Derivatives represent the rate of change of a function with respect to a variable. Geometrically, the derivative is the slope of the tangent line to the graph of the function at a given point.

Common Rules:
- Power Rule
- Product Rule
- Quotient Rule
- Chain Rule`,
			Course:    "Mathematics",
			Year:      "2023",
			Subject:   "Calculus",
			Tags:      []string{"Math", "Calculus", "Limits"},
			Thumbnail: "https://picsum.photos/seed/math/400/250",
			Author:    prof,
			Downloads: 850,
			Likes:     120,
			IsPremium: true,
			Price:     price(4.99),
			CreatedAt: "2024-02-15",
			Comments:  []Comment{},
		},
		{
			ID:          "n3",
			Title:       "Organic Chemistry: Hydrocarbons",
			Description: "Study notes covering Alkanes, Alkenes, and Alkynes.",
			Content: `Hydrocarbons are organic compounds consisting entirely of hydrogen and carbon.

Alkanes: Saturated hydrocarbons (single bonds). Formula CnH2n+2.
Alkenes: Unsaturated hydrocarbons (double bonds). Formula CnH2n.
Alkynes: Unsaturated hydrocarbons (triple bonds). Formula CnH2n-2.

Reactions:
- Combustion
- Halogenation
- Hydrogenation`,
			Course:    "Chemistry",
			Year:      "2024",
			Subject:   "Science",
			Tags:      []string{"Chemistry", "Organic", "Science"},
			Thumbnail: "https://picsum.photos/seed/chem/400/250",
			Author:    sarah,
			Downloads: 543,
			Likes:     89,
			CreatedAt: "2024-03-01",
			Comments:  []Comment{},
		},
		{
			ID:          "n4",
			Title:       "Machine Learning Basics",
			Description: "Introduction to Supervised and Unsupervised Learning.",
			Content: `Machine learning is a field of inquiry devoted to understanding and building methods that 'learn', that is, methods that leverage data to improve performance on some set of tasks.

Supervised Learning:
The algorithm learns on a labeled dataset, providing an answer key that the algorithm can use to evaluate its accuracy on training data.

Unsupervised Learning:
Provides unlabeled data that the algorithm tries to make sense of by extracting features and patterns on its own.`,
			Course:    "Computer Science",
			Year:      "2024",
			Subject:   "AI",
			Tags:      []string{"AI", "ML", "Python"},
			Thumbnail: "https://picsum.photos/seed/ai/400/250",
			Author:    guru,
			Downloads: 2100,
			Likes:     560,
			IsPremium: true,
			Price:     price(9.99),
			CreatedAt: "2024-01-20",
			Comments:  []Comment{},
		},
	}
}

package examples

func getContentExamples() []ExampleSet {
	return []ExampleSet{
		{
			Name:        "Editorial",
			Description: "Articles, blog posts, FAQs and how-to guides",
			Templates: []Template{
				{
					Type:  "Article",
					Title: "Article",
					Properties: func() map[string]any {
						return map[string]any{
							"headline":      "{{HEADLINE}}",
							"description":   "{{SUMMARY}}",
							"datePublished": "2025-01-01",
							"author": map[string]any{
								"@type": "Person",
								"name":  "{{AUTHOR}}",
							},
						}
					},
				},
				{
					Type:  "BlogPosting",
					Title: "Blog Post",
					Properties: func() map[string]any {
						return map[string]any{
							"headline":      "{{HEADLINE}}",
							"datePublished": "2025-01-01",
							"keywords":      []any{"{{KEYWORD}}"},
							"author": map[string]any{
								"@type": "Person",
								"name":  "{{AUTHOR}}",
							},
						}
					},
				},
				{
					Type:  "FAQPage",
					Title: "FAQ",
					Properties: func() map[string]any {
						return map[string]any{
							"mainEntity": []any{
								map[string]any{
									"@type": "Question",
									"name":  "{{QUESTION}}",
									"acceptedAnswer": map[string]any{
										"@type": "Answer",
										"text":  "{{ANSWER}}",
									},
								},
							},
						}
					},
				},
				{
					Type:  "HowTo",
					Title: "How-To",
					Properties: func() map[string]any {
						return map[string]any{
							"name":      "{{TASK}}",
							"totalTime": "PT30M",
							"step": []any{
								map[string]any{"@type": "HowToStep", "text": "{{STEP_1}}"},
								map[string]any{"@type": "HowToStep", "text": "{{STEP_2}}"},
							},
						}
					},
				},
			},
			Items: []ExampleItem{
				{Name: "example-blog-post", Types: []string{"BlogPosting", "FAQPage"}, Primary: "BlogPosting"},
				{Name: "example-guide", Types: []string{"HowTo", "Article"}, Primary: "HowTo"},
			},
		},
	}
}

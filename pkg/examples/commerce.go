package examples

func getCommerceExamples() []ExampleSet {
	return []ExampleSet{
		{
			Name:        "Commerce",
			Description: "Products, businesses, organizations and events",
			Templates: []Template{
				{
					Type:  "Product",
					Title: "Product",
					Properties: func() map[string]any {
						return map[string]any{
							"name":  "{{PRODUCT_NAME}}",
							"sku":   "{{SKU}}",
							"brand": map[string]any{"@type": "Brand", "name": "{{BRAND}}"},
							"offers": map[string]any{
								"@type":         "Offer",
								"price":         "0.00",
								"priceCurrency": "USD",
								"availability":  "https://schema.org/InStock",
							},
						}
					},
				},
				{
					Type:  "LocalBusiness",
					Title: "Local Business",
					Properties: func() map[string]any {
						return map[string]any{
							"name":      "{{BUSINESS_NAME}}",
							"telephone": "{{PHONE}}",
							"address": map[string]any{
								"@type":           "PostalAddress",
								"streetAddress":   "{{STREET}}",
								"addressLocality": "{{CITY}}",
								"postalCode":      "{{ZIP}}",
							},
							"openingHours": "Mo-Fr 09:00-17:00",
						}
					},
				},
				{
					Type:  "Organization",
					Title: "Organization",
					Properties: func() map[string]any {
						return map[string]any{
							"name":   "{{ORGANIZATION}}",
							"url":    "https://example.com",
							"logo":   "https://example.com/logo.png",
							"sameAs": []any{"https://example.com/social"},
						}
					},
				},
				{
					Type:  "Event",
					Title: "Event",
					Properties: func() map[string]any {
						return map[string]any{
							"name":      "{{EVENT_NAME}}",
							"startDate": "2025-01-01T19:00",
							"location": map[string]any{
								"@type": "Place",
								"name":  "{{VENUE}}",
							},
							"eventStatus": "https://schema.org/EventScheduled",
						}
					},
				},
			},
			Items: []ExampleItem{
				{Name: "example-product", Types: []string{"Product", "Organization"}, Primary: "Product"},
				{Name: "example-store", Types: []string{"LocalBusiness", "Event"}, Primary: "LocalBusiness"},
			},
		},
	}
}

package content

// Section migrations. Early versions of the site stored some arrays as
// plain primitives (bio paragraphs and certification names as bare
// strings, stats and highlights as objects without ids). Migrations run
// only on the admin edit path; the public read path serves stored content
// as-is. Both migrations are idempotent: a document already in the current
// shape passes through unchanged.

func migrateAbout(doc Document) Document {
	def := defaultAbout()
	if bio, ok := doc["bio"].([]any); ok && len(bio) > 0 && isObject(bio[0]) {
		return doc
	}
	return Document{
		"name":       stringOr(doc, "name", def),
		"fullName":   stringOr(doc, "fullName", def),
		"bio":        wrapPrimitives(listOr(doc, "bio", def), "text"),
		"stats":      assignSequentialIDs(listOr(doc, "stats", def)),
		"highlights": assignSequentialIDs(listOr(doc, "highlights", def)),
	}
}

func migrateEducation(doc Document) Document {
	def := defaultEducation()
	if certs, ok := doc["certifications"].([]any); ok && len(certs) > 0 && isObject(certs[0]) {
		return doc
	}
	return Document{
		"education":      assignSequentialIDs(listOr(doc, "education", def)),
		"certifications": wrapPrimitives(listOr(doc, "certifications", def), "name"),
	}
}

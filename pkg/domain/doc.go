// Package domain contains the core entities of the travel guide: governorates
// and their nested attractions, cuisine, culture and transport records, the
// guide content shown outside a single governorate, and the session user.
// The types carry no infrastructure concerns so they can be shared across the
// catalog, session and transport packages.
package domain

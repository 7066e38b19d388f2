package rssfeeds

import (
	"time"

	"newsviewer/types"
)

// MockArticles is the sample set: one article now, one a day old, one two days old
func MockArticles(now time.Time) []types.Article {
	now = now.UTC()
	return []types.Article{
		{
			ID:      1,
			Title:   "Primera Noticia de Ejemplo",
			Content: "Este es el contenido completo de la primera noticia. Aquí iría todo el texto del artículo que proviene del Google Doc.\n\nPuede tener múltiples párrafos y contenido extenso para mostrar cómo se ve el artículo completo.",
			Summary: "Este es el contenido completo de la primera noticia. Aquí iría todo el texto del artículo que proviene del Google Doc. Puede tener múltiples párrafos y contenido...",
			Date:    types.NewTimestamp(now),
			Image:   "https://via.placeholder.com/800x400?text=Noticia+1",
		},
		{
			ID:      2,
			Title:   "Segunda Noticia de Ejemplo",
			Content: "Contenido de la segunda noticia con información relevante.",
			Summary: "Contenido de la segunda noticia con información relevante y datos importantes para el lector...",
			Date:    types.NewTimestamp(now.Add(-24 * time.Hour)),
			Image:   "https://via.placeholder.com/800x400?text=Noticia+2",
		},
		{
			ID:      3,
			Title:   "Tercera Noticia de Ejemplo",
			Content: "Más contenido interesante para la tercera publicación.",
			Summary: "Más contenido interesante para la tercera publicación con detalles adicionales sobre el tema...",
			Date:    types.NewTimestamp(now.Add(-48 * time.Hour)),
			Image:   "https://via.placeholder.com/800x400?text=Noticia+3",
		},
	}
}

package handlers

import (
	"bytes"
	"net/http"
	"net/url"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brand-showcase/pkg/forms"
)

const viewsDir = "../../views"

func TestPages_RenderThroughPugViews(t *testing.T) {
	env := newTestEnvWithRenderer(t, "development", NewPugRenderer(viewsDir, false))

	tests := []struct {
		name   string
		method string
		target string
		form   url.Values
		status int
		want   []string
	}{
		{
			name:   "home",
			method: http.MethodGet,
			target: "/",
			status: http.StatusOK,
			want:   []string{"Nos marques partenaires", "Arpin", `href="/marques/ugg"`, "<title>Nos marques partenaires | Brand Showcase</title>"},
		},
		{
			name:   "brand listing",
			method: http.MethodGet,
			target: "/marques",
			status: http.StatusOK,
			want:   []string{"Toutes nos marques", "Le Slip Français", `action="/marques/bensimon/favori"`, "4 marque(s)"},
		},
		{
			name:   "brand listing by tag",
			method: http.MethodGet,
			target: "/marques?tag=Montagne",
			status: http.StatusOK,
			want:   []string{"UGG", "2 marque(s)", "Réinitialiser les filtres"},
		},
		{
			name:   "favorites listing",
			method: http.MethodGet,
			target: "/marques?favorites=true",
			status: http.StatusOK,
			want:   []string{"Aucune marque ne correspond à votre recherche."},
		},
		{
			name:   "brand page",
			method: http.MethodGet,
			target: "/marques/ugg",
			status: http.StatusOK,
			want:   []string{"<h1>UGG</h1>", `src="/img/UGG/u.jpg"`, "Marques similaires", "Bensimon"},
		},
		{
			name:   "brand page without images",
			method: http.MethodGet,
			target: "/marques/le-slip-francais",
			status: http.StatusOK,
			want:   []string{"Aucune image disponible pour cette marque."},
		},
		{
			name:   "gallery grid",
			method: http.MethodGet,
			target: "/marques/arpin/galerie",
			status: http.StatusOK,
			want:   []string{"Galerie Arpin", `src="/img/Arpin/c%20d.jpg"`, "Page 1 / 1"},
		},
		{
			name:   "gallery viewer",
			method: http.MethodGet,
			target: "/marques/arpin/galerie?image=2",
			status: http.StatusOK,
			want:   []string{`download="c_d.jpg"`, "Télécharger", "3 / 3"},
		},
		{
			name:   "arpin",
			method: http.MethodGet,
			target: "/marques/arpin",
			status: http.StatusOK,
			want:   []string{"<strong>1817</strong>", "Couvertures traditionnelles", `value="autre"`},
		},
		{
			name:   "arpin quote rejected",
			method: http.MethodPost,
			target: "/marques/arpin",
			form:   url.Values{"nom": {"Jeanne"}, "email": {"jeanne@example.fr"}, "message": {"Bonjour"}},
			status: http.StatusUnprocessableEntity,
			want:   []string{forms.MsgConditions, `value="Jeanne"`},
		},
		{
			name:   "arpin quote accepted",
			method: http.MethodPost,
			target: "/marques/arpin",
			form: url.Values{
				"nom":              {"Jeanne"},
				"email":            {"jeanne@example.fr"},
				"message":          {"Bonjour"},
				"acceptConditions": {"on"},
			},
			status: http.StatusOK,
			want:   []string{"Votre demande a bien été envoyée"},
		},
		{
			name:   "contact",
			method: http.MethodGet,
			target: "/contact",
			status: http.StatusOK,
			want:   []string{`action="/contact"`, "Envoyer"},
		},
		{
			name:   "contact sent",
			method: http.MethodPost,
			target: "/contact",
			form: url.Values{
				"name":    {"Paul"},
				"email":   {"paul@example.fr"},
				"subject": {"Partenariat"},
				"message": {"Bonjour"},
			},
			status: http.StatusOK,
			want:   []string{"Votre message a bien été envoyé"},
		},
		{
			name:   "unknown brand",
			method: http.MethodGet,
			target: "/marques/inconnue",
			status: http.StatusNotFound,
			want:   []string{"Retour aux marques"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(t, tt.method, tt.target, tt.form)
			require.Equal(t, tt.status, rec.Code, rec.Body.String())
			body := rec.Body.String()
			assert.Contains(t, body, "<!DOCTYPE html>")
			for _, fragment := range tt.want {
				assert.Contains(t, body, fragment)
			}
		})
	}
}

func TestPugRenderer_AbsoluteDir(t *testing.T) {
	abs, err := filepath.Abs(viewsDir)
	require.NoError(t, err)

	for _, dir := range []string{viewsDir, abs} {
		r := NewPugRenderer(dir, false)
		var buf bytes.Buffer
		require.NoError(t, r.Render(&buf, "contact", ContactPage{Title: "Contact"}), dir)
		assert.Contains(t, buf.String(), "<title>Contact | Brand Showcase</title>")
	}
}

func TestPugRenderer_UnknownView(t *testing.T) {
	r := NewPugRenderer(viewsDir, true)
	err := r.Render(&bytes.Buffer{}, "missing", nil)
	assert.Error(t, err)
}

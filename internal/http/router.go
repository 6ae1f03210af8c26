package http

import (
	"net/http"
	"strings"
)

type RouterConfig struct {
	Sessions      *SessionHandler
	Wiki          *WikiHandler
	Announcements *AnnouncementHandler
	Spaces        *SpaceHandler
	Partners      *PartnerHandler
	Offices       *OfficeHandler
	Members       *MemberHandler
	Backup        *BackupHandler
	Assistant     *AssistantHandler
	Reference     *ReferenceHandler
	Middleware    []func(http.Handler) http.Handler
}

func NewRouter(cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()

	if cfg.Sessions != nil {
		mux.HandleFunc("/session", func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet:
				cfg.Sessions.Current(w, r)
			case http.MethodDelete:
				cfg.Sessions.Logout(w, r)
			default:
				methodNotAllowed(w, http.MethodGet, http.MethodDelete)
			}
		})
		mux.HandleFunc("/session/member", func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				methodNotAllowed(w, http.MethodPost)
				return
			}
			cfg.Sessions.MemberLogin(w, r)
		})
		mux.HandleFunc("/session/admin", func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				methodNotAllowed(w, http.MethodPost)
				return
			}
			cfg.Sessions.AdminLogin(w, r)
		})
		mux.HandleFunc("/session/demote", func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				methodNotAllowed(w, http.MethodPost)
				return
			}
			cfg.Sessions.Demote(w, r)
		})
	}

	if cfg.Wiki != nil {
		mux.HandleFunc("/wiki", func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet:
				cfg.Wiki.List(w, r)
			case http.MethodPost:
				cfg.Wiki.Create(w, r)
			default:
				methodNotAllowed(w, http.MethodGet, http.MethodPost)
			}
		})
		mux.HandleFunc("/wiki/", func(w http.ResponseWriter, r *http.Request) {
			id := strings.TrimPrefix(r.URL.Path, "/wiki/")
			if id == "" {
				http.NotFound(w, r)
				return
			}
			if r.Method != http.MethodDelete {
				methodNotAllowed(w, http.MethodDelete)
				return
			}
			cfg.Wiki.Delete(w, r.WithContext(ContextWithResourceID(r.Context(), id)))
		})
	}

	if cfg.Announcements != nil {
		mux.HandleFunc("/announcements", func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet:
				cfg.Announcements.List(w, r)
			case http.MethodPost:
				cfg.Announcements.Save(w, r)
			default:
				methodNotAllowed(w, http.MethodGet, http.MethodPost)
			}
		})
		mux.HandleFunc("/announcements/", func(w http.ResponseWriter, r *http.Request) {
			id := strings.TrimPrefix(r.URL.Path, "/announcements/")
			if id == "" {
				http.NotFound(w, r)
				return
			}
			if r.Method != http.MethodDelete {
				methodNotAllowed(w, http.MethodDelete)
				return
			}
			if id == "expired" {
				cfg.Announcements.ClearExpired(w, r)
				return
			}
			cfg.Announcements.Delete(w, r.WithContext(ContextWithResourceID(r.Context(), id)))
		})
	}

	if cfg.Spaces != nil {
		mux.HandleFunc("/branches", func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				methodNotAllowed(w, http.MethodGet)
				return
			}
			cfg.Spaces.Branches(w, r)
		})
		mux.HandleFunc("/spaces", func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet:
				cfg.Spaces.List(w, r)
			case http.MethodPost:
				cfg.Spaces.Create(w, r)
			default:
				methodNotAllowed(w, http.MethodGet, http.MethodPost)
			}
		})
		mux.HandleFunc("/spaces/", func(w http.ResponseWriter, r *http.Request) {
			id := strings.TrimPrefix(r.URL.Path, "/spaces/")
			if id == "" {
				http.NotFound(w, r)
				return
			}
			if r.Method != http.MethodDelete {
				methodNotAllowed(w, http.MethodDelete)
				return
			}
			cfg.Spaces.Delete(w, r.WithContext(ContextWithResourceID(r.Context(), id)))
		})
	}

	if cfg.Partners != nil {
		mux.HandleFunc("/partners", func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet:
				cfg.Partners.List(w, r)
			case http.MethodPost:
				cfg.Partners.Save(w, r)
			default:
				methodNotAllowed(w, http.MethodGet, http.MethodPost)
			}
		})
		mux.HandleFunc("/partners/", func(w http.ResponseWriter, r *http.Request) {
			id := strings.TrimPrefix(r.URL.Path, "/partners/")
			if id == "" {
				http.NotFound(w, r)
				return
			}
			if r.Method != http.MethodDelete {
				methodNotAllowed(w, http.MethodDelete)
				return
			}
			cfg.Partners.Delete(w, r.WithContext(ContextWithResourceID(r.Context(), id)))
		})
	}

	if cfg.Offices != nil {
		mux.HandleFunc("/offices", func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				methodNotAllowed(w, http.MethodGet)
				return
			}
			cfg.Offices.List(w, r)
		})
		mux.HandleFunc("/offices/", func(w http.ResponseWriter, r *http.Request) {
			id := strings.TrimPrefix(r.URL.Path, "/offices/")
			if id == "" {
				http.NotFound(w, r)
				return
			}
			r = r.WithContext(ContextWithResourceID(r.Context(), id))
			switch r.Method {
			case http.MethodPut:
				cfg.Offices.Update(w, r)
			case http.MethodDelete:
				cfg.Offices.Delete(w, r)
			default:
				methodNotAllowed(w, http.MethodPut, http.MethodDelete)
			}
		})
	}

	if cfg.Members != nil {
		mux.HandleFunc("/members", func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet:
				cfg.Members.List(w, r)
			case http.MethodPut:
				cfg.Members.Replace(w, r)
			default:
				methodNotAllowed(w, http.MethodGet, http.MethodPut)
			}
		})
		mux.HandleFunc("/members/petty-cash", func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				methodNotAllowed(w, http.MethodGet)
				return
			}
			cfg.Members.PettyCash(w, r)
		})
	}

	if cfg.Backup != nil {
		mux.HandleFunc("/backup/export", func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				methodNotAllowed(w, http.MethodGet)
				return
			}
			cfg.Backup.Export(w, r)
		})
		mux.HandleFunc("/backup/preview", func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				methodNotAllowed(w, http.MethodPost)
				return
			}
			cfg.Backup.Preview(w, r)
		})
		mux.HandleFunc("/backup/restore", func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				methodNotAllowed(w, http.MethodPost)
				return
			}
			cfg.Backup.Restore(w, r)
		})
	}

	if cfg.Assistant != nil {
		mux.HandleFunc("/assistant/chat", func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				methodNotAllowed(w, http.MethodPost)
				return
			}
			cfg.Assistant.Chat(w, r)
		})
	}

	if cfg.Reference != nil {
		mux.HandleFunc("/foodmap", func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				methodNotAllowed(w, http.MethodGet)
				return
			}
			cfg.Reference.FoodMap(w, r)
		})
		mux.HandleFunc("/rules", func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				methodNotAllowed(w, http.MethodGet)
				return
			}
			cfg.Reference.Rules(w, r)
		})
	}

	var handler http.Handler = mux
	for i := len(cfg.Middleware) - 1; i >= 0; i-- {
		if cfg.Middleware[i] != nil {
			handler = cfg.Middleware[i](handler)
		}
	}

	return handler
}

func methodNotAllowed(w http.ResponseWriter, allowed ...string) {
	if len(allowed) > 0 {
		w.Header().Set("Allow", strings.Join(allowed, ", "))
	}
	http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
}

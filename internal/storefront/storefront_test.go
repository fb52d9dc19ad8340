package storefront

import (
	"bytes"
	"context"
	"encoding/json"
	"html"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"sync"
	"testing"

	"github.com/gin-contrib/static"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/api"
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/auth"
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/auth/credentials"
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/auth/provider"
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/auth/provider/seller"
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/auth/provider/shopper"
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/auth/resolver"
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/checkout"
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/csrf"
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/flash"
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/kv"
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/middleware"
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/session"
	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/wishlist"
)

// fakeAPI is a small in-memory stand-in for the REST backend.
type fakeAPI struct {
	mu sync.Mutex

	cartAdds        []int
	wishlistRemoves []int
	orders          []string
	authHeaders     []string

	created []string
	uploads map[string]string
	updated []string
	deleted []string

	failWishlistRemove bool
	rejectCart         bool
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.authHeaders = append(f.authHeaders, r.Header.Get("Authorization"))
	w.Header().Set("Content-Type", "application/json")
	reply := func(status int, v any) {
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(v)
	}

	var body map[string]any
	if r.Body != nil && strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		_ = json.NewDecoder(r.Body).Decode(&body)
	}

	switch path := strings.TrimPrefix(r.URL.Path, "/api"); {
	case path == "/auth/login/" && body["username"] == "alice" && body["password"] == "pw":
		reply(http.StatusOK, map[string]any{"token": "ta", "username": "alice", "is_staff": false})
	case path == "/auth/admin/login/" && body["username"] == "sam" && body["password"] == "pw":
		reply(http.StatusOK, map[string]any{"token": "ts", "username": "sam"})
	case strings.HasPrefix(path, "/auth/"):
		reply(http.StatusUnauthorized, map[string]string{"error": "Invalid credentials"})

	case path == "/products/" && r.Method == http.MethodGet:
		reply(http.StatusOK, []map[string]any{
			{"id": 1, "title": "Trail Shoe", "price": "120.00", "rating": 4.5, "category": map[string]any{"name": "Shoes"}},
			{"id": 2, "title": "Road Shoe", "price": 80, "category": map[string]any{"name": "Shoes"}},
			{"id": 3, "title": "Wool Cap", "price": "15.50", "rating": "3.9", "category": map[string]any{"name": "Hats"}},
		})
	case path == "/products/my/":
		reply(http.StatusOK, []map[string]any{{"id": 5, "title": "Trail Shoe", "price": "120.00"}})
	case path == "/products/" && r.Method == http.MethodPost:
		title, category := f.readProduct(r)
		f.created = append(f.created, title)
		if category == "Nope" {
			reply(http.StatusBadRequest, map[string]string{"error": "Category does not exist"})
			return
		}
		reply(http.StatusCreated, map[string]any{"id": 5, "title": title, "price": "120.00"})
	case path == "/products/6/" && r.Method != http.MethodGet:
		reply(http.StatusForbidden, map[string]string{"error": "You can only edit products you created"})
	case path == "/products/5/" && r.Method == http.MethodPut:
		title, _ := f.readProduct(r)
		f.updated = append(f.updated, title)
		reply(http.StatusOK, map[string]any{"id": 5, "title": title, "price": "99.00"})
	case path == "/products/5/" && r.Method == http.MethodDelete:
		f.deleted = append(f.deleted, "5")
		w.WriteHeader(http.StatusNoContent)
	case path == "/products/1/":
		reply(http.StatusOK, map[string]any{"id": 1, "title": "Trail Shoe", "price": "120.00"})
	case path == "/products/1/reviews/":
		reply(http.StatusOK, []map[string]any{{"id": 9, "rating": 5, "title": "Great", "body": "Comfy"}})
	case strings.HasPrefix(path, "/products/"):
		reply(http.StatusNotFound, map[string]string{"detail": "Not found."})

	case path == "/cart/" && f.rejectCart:
		reply(http.StatusUnauthorized, map[string]string{"detail": "Invalid token."})
	case path == "/cart/" && r.Method == http.MethodGet:
		reply(http.StatusOK, map[string]any{"cart_id": 7, "items": []map[string]any{
			{"id": 11, "product_id": 1, "title": "Trail Shoe", "price": "120.00", "quantity": 2},
			{"id": 12, "product_id": 3, "title": "", "price": "15.50", "quantity": 1},
		}})
	case path == "/cart/" && r.Method == http.MethodPost:
		id, _ := body["product_id"].(float64)
		f.cartAdds = append(f.cartAdds, int(id))
		reply(http.StatusCreated, map[string]any{"id": 11, "product": int(id), "quantity": 1})

	case strings.HasPrefix(path, "/wishlist/remove/"):
		if f.failWishlistRemove {
			reply(http.StatusInternalServerError, map[string]string{"error": "boom"})
			return
		}
		f.wishlistRemoves = append(f.wishlistRemoves, 1)
		w.WriteHeader(http.StatusNoContent)

	case path == "/orders/create/":
		id, _ := body["address_id"].(string)
		f.orders = append(f.orders, id)
		reply(http.StatusCreated, map[string]any{"order_id": 42, "total_amount": "255.50"})
	case path == "/orders/":
		reply(http.StatusOK, []map[string]any{{"id": 42, "status": "PENDING", "total_amount": "255.50"}})

	case path == "/payu/initiate/":
		reply(http.StatusOK, map[string]any{
			"action": "https://gateway.test/_payment",
			"key":    "k1",
			"txnid":  "TXN123",
			"amount": 255.5,
			"hash":   "h",
		})

	default:
		reply(http.StatusNotFound, map[string]string{"detail": "Not found."})
	}
}

// readProduct decodes a multipart product form, recording any image part.
func (f *fakeAPI) readProduct(r *http.Request) (title, category string) {
	if err := r.ParseMultipartForm(1 << 20); err != nil {
		return "", ""
	}
	if file, header, err := r.FormFile("images"); err == nil {
		content, _ := io.ReadAll(file)
		_ = file.Close()
		if f.uploads == nil {
			f.uploads = map[string]string{}
		}
		f.uploads[header.Filename] = string(content)
	}
	return r.FormValue("title"), r.FormValue("category_name")
}

type harness struct {
	t       *testing.T
	api     *fakeAPI
	backend *kv.MemoryBackend
	router  *gin.Engine
	install string
	jar     map[string]*http.Cookie
	token   string
}

var (
	tokenField = regexp.MustCompile(`name="csrf_token" value="([^"]+)"`)
	flashBox   = regexp.MustCompile(`class="flash flash-(\w+)"[^>]*>([^<]*)<`)
)

func newHarness(t *testing.T) *harness {
	t.Helper()
	gin.SetMode(gin.TestMode)

	fake := &fakeAPI{}
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	client := api.New(srv.URL + "/api")
	chain := provider.NewChain(shopper.New(client), seller.New(client))
	backend := kv.NewMemory()
	manager := auth.NewManager(backend, client, chain.Strategies(), resolver.NewRoleResolver(), nil)

	r := gin.New()
	r.Use(static.Serve("/static", Assets()))
	r.Use(middleware.GinInstallation(middleware.NewInstallations(manager, session.CookieOptions{})))
	NewHandler(credentials.NewService(client), middleware.NewGuard(nil), Options{Secret: "test-secret"}).RegisterRoutes(r)

	id, err := session.NewInstallID()
	require.NoError(t, err)

	h := &harness{
		t:       t,
		api:     fake,
		backend: backend,
		router:  r,
		install: id,
		jar:     map[string]*http.Cookie{session.CookieName: {Name: session.CookieName, Value: id}},
	}

	m := tokenField.FindStringSubmatch(h.get("/login").Body.String())
	require.NotNil(t, m, "login form carries a csrf field")
	h.token = html.UnescapeString(m[1])
	return h
}

func (h *harness) store() kv.Store { return h.backend.Open(h.install) }

func (h *harness) signIn(username string, staff bool) {
	h.t.Helper()
	s, err := session.Authenticated(username, "t-"+username, staff)
	require.NoError(h.t, err)
	require.NoError(h.t, session.NewPersister(h.store()).Save(context.Background(), s))
}

// serve sends req with the browser's cookies and keeps the ones it sets.
func (h *harness) serve(req *http.Request) *httptest.ResponseRecorder {
	for _, c := range h.jar {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, req)
	for _, c := range rec.Result().Cookies() {
		if c.MaxAge < 0 {
			delete(h.jar, c.Name)
			continue
		}
		h.jar[c.Name] = c
	}
	return rec
}

func (h *harness) get(path string) *httptest.ResponseRecorder {
	return h.serve(httptest.NewRequest(http.MethodGet, path, nil))
}

func (h *harness) post(path string, form url.Values) *httptest.ResponseRecorder {
	if form == nil {
		form = url.Values{}
	}
	form.Set(csrf.FieldName, h.token)
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return h.serve(req)
}

// postMultipart submits fields plus an optional "image" file.
func (h *harness) postMultipart(path string, fields url.Values, filename, content string) *httptest.ResponseRecorder {
	h.t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fields.Set(csrf.FieldName, h.token)
	for name, values := range fields {
		for _, v := range values {
			require.NoError(h.t, mw.WriteField(name, v))
		}
	}
	if filename != "" {
		part, err := mw.CreateFormFile("image", filename)
		require.NoError(h.t, err)
		_, err = io.WriteString(part, content)
		require.NoError(h.t, err)
	}
	require.NoError(h.t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return h.serve(req)
}

// flash renders the next page and returns the message it shows.
func (h *harness) flash() flash.Message {
	h.t.Helper()
	m := flashBox.FindStringSubmatch(h.get("/login").Body.String())
	require.NotNil(h.t, m, "expected a flash message")
	return flash.Message{Kind: flash.Kind(m[1]), Text: html.UnescapeString(m[2])}
}

func (h *harness) loadSession() session.Session {
	h.t.Helper()
	s, err := session.NewPersister(h.store()).Load(context.Background())
	require.NoError(h.t, err)
	return s
}

func TestHomeListsAndFilters(t *testing.T) {
	h := newHarness(t)

	rec := h.get("/")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Trail Shoe")
	assert.Contains(t, body, "Wool Cap")
	assert.Contains(t, body, `value="Hats"`)
	assert.Contains(t, body, api.PlaceholderImage)

	rec = h.get("/?category=Shoes&min_rating=4")
	body = rec.Body.String()
	assert.Contains(t, body, "Trail Shoe")
	assert.NotContains(t, body, "Road Shoe", "unrated products fail a rating filter")
	assert.NotContains(t, body, "Wool Cap")
}

func TestAnonymousHeaderOffersLogin(t *testing.T) {
	h := newHarness(t)

	body := h.get("/").Body.String()
	assert.Contains(t, body, `href="/login"`)
	assert.Contains(t, body, `href="/seller/register"`)
	assert.NotContains(t, body, "Admin Dashboard")
}

func TestGuardedPageRedirectsAnonymous(t *testing.T) {
	h := newHarness(t)

	for _, path := range []string{"/cart", "/wishlist", "/checkout", "/orders", "/admin"} {
		rec := h.get(path)
		assert.Equal(t, http.StatusFound, rec.Code, path)
		assert.Equal(t, "/login", rec.Header().Get("Location"), path)
	}
}

func TestLoginLandsByRole(t *testing.T) {
	tests := []struct {
		name    string
		user    string
		landing string
		staff   bool
	}{
		{"shopper", "alice", "/", false},
		{"seller falls through to admin endpoint", "sam", "/admin", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)

			rec := h.post("/login", url.Values{"username": {tt.user}, "password": {"pw"}})
			assert.Equal(t, http.StatusFound, rec.Code)
			assert.Equal(t, tt.landing, rec.Header().Get("Location"))

			s, err := session.NewPersister(h.store()).Load(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.user, s.Username())
			assert.Equal(t, tt.staff, s.IsStaff())
		})
	}
}

func TestLoginFailureKeepsAnonymous(t *testing.T) {
	h := newHarness(t)

	rec := h.post("/login", url.Values{"username": {"alice"}, "password": {"wrong"}})
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
	assert.Equal(t, auth.MsgInvalidCredentials, h.flash().Text)

	_, ok, err := h.store().Get(context.Background(), kv.KeyToken)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSellerLoginOnlyTriesSellerEndpoint(t *testing.T) {
	h := newHarness(t)

	rec := h.post("/seller/login", url.Values{"username": {"alice"}, "password": {"pw"}})
	assert.Equal(t, "/seller/login", rec.Header().Get("Location"))
	assert.Equal(t, auth.MsgInvalidCredentials, h.flash().Text)
}

func TestLogoutIsIdempotent(t *testing.T) {
	h := newHarness(t)
	h.signIn("alice", false)

	for i := 0; i < 2; i++ {
		rec := h.post("/logout", nil)
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/login", rec.Header().Get("Location"))
	}
	assert.Equal(t, http.StatusFound, h.get("/cart").Code)
}

func TestPostWithoutCSRFIsRejected(t *testing.T) {
	h := newHarness(t)

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader("username=alice&password=pw"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/login", strings.NewReader("username=alice&password=pw&csrf_token=forged"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec = h.serve(req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, h.loadSession().IsAuthenticated())
}

func TestCartRendersWithBearerToken(t *testing.T) {
	h := newHarness(t)
	h.signIn("alice", false)

	rec := h.get("/cart")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Trail Shoe")
	assert.Contains(t, body, api.UnknownProduct)
	assert.Contains(t, body, "255.50")
	assert.Contains(t, h.api.authHeaders, "Bearer t-alice")
}

func TestRejectedTokenKeepsSession(t *testing.T) {
	h := newHarness(t)
	h.signIn("alice", false)
	h.api.rejectCart = true

	rec := h.get("/cart")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	assert.Equal(t, "Invalid token.", h.flash().Text)

	s := h.loadSession()
	assert.True(t, s.IsAuthenticated())
	assert.Equal(t, "alice", s.Username())
}

func TestAddToCartReturnsToPage(t *testing.T) {
	h := newHarness(t)
	h.signIn("alice", false)

	rec := h.post("/cart/add", url.Values{"product_id": {"3"}, "next": {"/product/3"}})
	assert.Equal(t, "/product/3", rec.Header().Get("Location"))
	assert.Equal(t, MsgAddedToCart, h.flash().Text)
	assert.Equal(t, []int{3}, h.api.cartAdds)

	rec = h.post("/cart/add", url.Values{"product_id": {"3"}, "next": {"//evil.test"}})
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestMoveToCart(t *testing.T) {
	t.Run("both steps", func(t *testing.T) {
		h := newHarness(t)
		h.signIn("alice", false)

		rec := h.post("/wishlist/move", url.Values{"product_id": {"1"}})
		assert.Equal(t, "/wishlist", rec.Header().Get("Location"))
		assert.Equal(t, wishlist.MsgMoved, h.flash().Text)
		assert.Len(t, h.api.cartAdds, 1)
		assert.Len(t, h.api.wishlistRemoves, 1)
	})

	t.Run("removal fails after add", func(t *testing.T) {
		h := newHarness(t)
		h.signIn("alice", false)
		h.api.failWishlistRemove = true

		h.post("/wishlist/move", url.Values{"product_id": {"1"}})
		m := h.flash()
		assert.Equal(t, flash.KindError, m.Kind)
		assert.Equal(t, wishlist.MsgMovePartially, m.Text)
		assert.Equal(t, []int{1}, h.api.cartAdds, "cart add is not rolled back")
	})
}

func TestPaymentNeedsSelectedAddress(t *testing.T) {
	h := newHarness(t)
	h.signIn("alice", false)

	rec := h.post("/checkout/pay", nil)
	assert.Equal(t, "/checkout", rec.Header().Get("Location"))
	assert.Equal(t, checkout.MsgSelectAddress, h.flash().Text)

	rec = h.post("/checkout/address", url.Values{"line": {"221B Baker Street"}, "city": {"London"}})
	assert.Equal(t, MsgAddressSaved, h.flash().Text)

	rec = h.post("/checkout/pay", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `action="https://gateway.test/_payment"`)
	assert.Contains(t, body, `name="txnid" value="TXN123"`)
	assert.Contains(t, body, `name="udf1" value=""`)
}

func TestAddressRequiresLine(t *testing.T) {
	h := newHarness(t)
	h.signIn("alice", false)

	h.post("/checkout/address", url.Values{"line": {"   "}})
	assert.Equal(t, checkout.MsgAddressRequired, h.flash().Text)

	list, err := checkout.NewBook(h.store()).List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestPlaceOrderUsesSelectedAddress(t *testing.T) {
	h := newHarness(t)
	h.signIn("alice", false)

	addr, err := checkout.NewBook(h.store()).Add(context.Background(), checkout.AddressInput{Line: "1 Main St"})
	require.NoError(t, err)

	rec := h.post("/orders/create", nil)
	assert.Equal(t, "/orders", rec.Header().Get("Location"))
	assert.Equal(t, MsgOrderPlaced, h.flash().Text)
	assert.Equal(t, []string{addr.ID}, h.api.orders)

	body := h.get("/orders").Body.String()
	assert.Contains(t, body, "Order #42")
}

func TestAdminRequiresStaff(t *testing.T) {
	h := newHarness(t)
	h.signIn("alice", false)

	rec := h.get("/admin")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	assert.Equal(t, middleware.MsgStaffOnly, h.flash().Text)
}

func TestAdminCreateProductUploadsImage(t *testing.T) {
	h := newHarness(t)
	h.signIn("sam", true)

	rec := h.postMultipart("/admin/products", url.Values{
		"title":         {" Trail Shoe "},
		"price":         {"120"},
		"category_name": {"Shoes"},
	}, "shoe.png", "png-bytes")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/admin", rec.Header().Get("Location"))
	assert.Equal(t, MsgProductCreated, h.flash().Text)

	assert.Equal(t, []string{"Trail Shoe"}, h.api.created)
	assert.Equal(t, map[string]string{"shoe.png": "png-bytes"}, h.api.uploads)
}

func TestAdminCreateNeedsTitleAndPrice(t *testing.T) {
	h := newHarness(t)
	h.signIn("sam", true)

	for _, fields := range []url.Values{
		{"title": {"   "}, "price": {"10"}},
		{"title": {"Cap"}, "price": {""}},
	} {
		rec := h.postMultipart("/admin/products", fields, "", "")
		assert.Equal(t, "/admin", rec.Header().Get("Location"))

		m := h.flash()
		assert.Equal(t, flash.KindError, m.Kind)
		assert.Equal(t, MsgProductCreateFailed, m.Text)
	}
	assert.Empty(t, h.api.created, "invalid forms never reach the backend")
}

func TestAdminUpdateAndDelete(t *testing.T) {
	h := newHarness(t)
	h.signIn("sam", true)

	rec := h.postMultipart("/admin/products/5", url.Values{"title": {"Trail Shoe II"}, "price": {"99"}}, "", "")
	assert.Equal(t, "/admin", rec.Header().Get("Location"))
	assert.Equal(t, MsgProductUpdated, h.flash().Text)
	assert.Equal(t, []string{"Trail Shoe II"}, h.api.updated)
	assert.Empty(t, h.api.uploads)

	rec = h.post("/admin/products/5/delete", nil)
	assert.Equal(t, "/admin", rec.Header().Get("Location"))
	assert.Equal(t, MsgProductDeleted, h.flash().Text)
	assert.Equal(t, []string{"5"}, h.api.deleted)

	assert.Equal(t, http.StatusNotFound, h.post("/admin/products/abc/delete", nil).Code)
}

func TestAdminBackendRefusalShowsServerText(t *testing.T) {
	t.Run("forbidden delete keeps the seller signed in", func(t *testing.T) {
		h := newHarness(t)
		h.signIn("sam", true)

		rec := h.post("/admin/products/6/delete", nil)
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/admin", rec.Header().Get("Location"))

		m := h.flash()
		assert.Equal(t, flash.KindError, m.Kind)
		assert.Equal(t, "You can only edit products you created", m.Text)
		assert.Empty(t, h.api.deleted)

		s := h.loadSession()
		assert.True(t, s.IsAuthenticated())
		assert.True(t, s.IsStaff())
		assert.Equal(t, http.StatusOK, h.get("/admin").Code)
	})

	t.Run("rejected create", func(t *testing.T) {
		h := newHarness(t)
		h.signIn("sam", true)

		h.postMultipart("/admin/products", url.Values{"title": {"Cap"}, "price": {"10"}, "category_name": {"Nope"}}, "", "")
		assert.Equal(t, "Category does not exist", h.flash().Text)
		assert.Equal(t, []string{"Cap"}, h.api.created)
	})
}

func TestFailureText(t *testing.T) {
	refused := &api.StatusError{Status: http.StatusForbidden, Message: "Admin only"}
	assert.Equal(t, "Admin only", failureText(refused, MsgDeleteFailed))
	assert.Equal(t, MsgDeleteFailed, failureText(&api.StatusError{Status: http.StatusBadGateway, Message: "upstream"}, MsgDeleteFailed))
	assert.Equal(t, MsgDeleteFailed, failureText(&api.StatusError{Status: http.StatusBadRequest}, MsgDeleteFailed))
}

func TestProductDetail(t *testing.T) {
	h := newHarness(t)

	rec := h.get("/product/1")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Great")
	assert.Contains(t, rec.Body.String(), "Anonymous")

	assert.Equal(t, http.StatusNotFound, h.get("/product/99").Code)
	assert.Equal(t, http.StatusNotFound, h.get("/product/abc").Code)
}

func TestUnknownRouteAndAssets(t *testing.T) {
	h := newHarness(t)

	assert.Equal(t, http.StatusNotFound, h.get("/nope").Code)

	rec := h.get("/static/css/app.css")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), ".topbar")
}

func TestIsLocal(t *testing.T) {
	assert.True(t, isLocal("/"))
	assert.True(t, isLocal("/product/1"))
	assert.False(t, isLocal(""))
	assert.False(t, isLocal("//evil.test"))
	assert.False(t, isLocal(`/\evil.test`))
	assert.False(t, isLocal("https://evil.test"))
}

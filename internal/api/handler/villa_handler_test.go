package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/magicvilla/villa-api/internal/core/domain"
	"github.com/magicvilla/villa-api/internal/core/dto"
)

type stubVillaService struct {
	villas  []dto.VillaDTO
	created dto.VillaCreateDTO
	updated dto.VillaUpdateDTO
	patched []byte
	gotID   int
	err     error
}

func (s *stubVillaService) List(context.Context) ([]dto.VillaDTO, error) {
	return s.villas, s.err
}

func (s *stubVillaService) Get(_ context.Context, id int) (*dto.VillaDTO, error) {
	s.gotID = id
	if s.err != nil {
		return nil, s.err
	}
	return &dto.VillaDTO{ID: id, Name: "Royal"}, nil
}

func (s *stubVillaService) Create(_ context.Context, in dto.VillaCreateDTO) (*dto.VillaDTO, error) {
	s.created = in
	if s.err != nil {
		return nil, s.err
	}
	return &dto.VillaDTO{ID: 3, Name: in.Name}, nil
}

func (s *stubVillaService) Update(_ context.Context, id int, in dto.VillaUpdateDTO) (*dto.VillaDTO, error) {
	s.gotID, s.updated = id, in
	if s.err != nil {
		return nil, s.err
	}
	return &dto.VillaDTO{ID: in.ID, Name: in.Name}, nil
}

func (s *stubVillaService) Patch(_ context.Context, id int, document []byte) (*dto.VillaDTO, error) {
	s.gotID, s.patched = id, document
	if s.err != nil {
		return nil, s.err
	}
	return &dto.VillaDTO{ID: id, Name: "Patched"}, nil
}

func (s *stubVillaService) Delete(_ context.Context, id int) error {
	s.gotID = id
	return s.err
}

func TestVillaHandler_CreateSetsLocation(t *testing.T) {
	stub := &stubVillaService{}
	handler := NewVillaHandler(stub)

	c, rec := jsonContext(newEcho(), http.MethodPost, "/api/v1/villaAPI", `{"name":"Pool House","rate":200,"occupancy":4}`)
	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/api/v1/villaAPI/3" {
		t.Fatalf("unexpected location %q", loc)
	}
	if stub.created.Name != "Pool House" || stub.created.Occupancy != 4 {
		t.Fatalf("unexpected create input: %+v", stub.created)
	}
	resp := decodeEnvelope(t, rec)
	if resp["statusCode"] != float64(201) || resp["isSuccess"] != true {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
}

func TestVillaHandler_CreateValidation(t *testing.T) {
	stub := &stubVillaService{}
	handler := NewVillaHandler(stub)

	c, _ := jsonContext(newEcho(), http.MethodPost, "/api/v1/villaAPI", `{"rate":-1}`)
	err := handler.Create(c)

	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(ve.Messages) != 2 {
		t.Fatalf("expected name and rate messages, got %v", ve.Messages)
	}
	if stub.created.Name != "" {
		t.Fatalf("service must not be called")
	}
}

func TestVillaHandler_GetParsesID(t *testing.T) {
	stub := &stubVillaService{}
	handler := NewVillaHandler(stub)
	e := newEcho()

	c, rec := jsonContext(e, http.MethodGet, "/api/v1/villaAPI/7", "")
	c.SetParamNames("id")
	c.SetParamValues("7")
	if err := handler.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if stub.gotID != 7 || rec.Code != http.StatusOK {
		t.Fatalf("expected id 7 and 200, got %d and %d", stub.gotID, rec.Code)
	}

	c, _ = jsonContext(e, http.MethodGet, "/api/v1/villaAPI/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")
	if err := handler.Get(c); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestVillaHandler_ServiceErrorsPropagate(t *testing.T) {
	notFound := domain.Errorf(domain.ErrNotFound, "Villa 9 not found")
	handler := NewVillaHandler(&stubVillaService{err: notFound})

	c, _ := jsonContext(newEcho(), http.MethodDelete, "/api/v1/villaAPI/9", "")
	c.SetParamNames("id")
	c.SetParamValues("9")
	if err := handler.Delete(c); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestVillaHandler_UpdatePassesPathAndBody(t *testing.T) {
	stub := &stubVillaService{}
	handler := NewVillaHandler(stub)

	c, rec := jsonContext(newEcho(), http.MethodPut, "/api/v1/villaAPI/2", `{"id":2,"name":"Renamed"}`)
	c.SetParamNames("id")
	c.SetParamValues("2")
	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if stub.gotID != 2 || stub.updated.ID != 2 || stub.updated.Name != "Renamed" {
		t.Fatalf("unexpected update call: %d %+v", stub.gotID, stub.updated)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestVillaHandler_PatchForwardsDocument(t *testing.T) {
	stub := &stubVillaService{}
	handler := NewVillaHandler(stub)
	e := newEcho()

	doc := `[{"op":"replace","path":"/name","value":"Patched"}]`
	c, rec := jsonContext(e, http.MethodPatch, "/api/v1/villaAPI/4", doc)
	c.SetParamNames("id")
	c.SetParamValues("4")
	if err := handler.Patch(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if string(stub.patched) != doc || stub.gotID != 4 {
		t.Fatalf("document not forwarded: %q", stub.patched)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	c, _ = jsonContext(e, http.MethodPatch, "/api/v1/villaAPI/4", "")
	c.SetParamNames("id")
	c.SetParamValues("4")
	if err := handler.Patch(c); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error for empty body, got %v", err)
	}
}

func TestVillaHandler_DeleteAndList(t *testing.T) {
	stub := &stubVillaService{villas: []dto.VillaDTO{}}
	handler := NewVillaHandler(stub)
	e := newEcho()

	c, rec := jsonContext(e, http.MethodDelete, "/api/v1/villaAPI/5", "")
	c.SetParamNames("id")
	c.SetParamValues("5")
	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	resp := decodeEnvelope(t, rec)
	if rec.Code != http.StatusOK || resp["isSuccess"] != true {
		t.Fatalf("unexpected delete response: %d %+v", rec.Code, resp)
	}
	if _, ok := resp["result"]; ok {
		t.Fatalf("delete must not carry a result")
	}

	c, rec = jsonContext(e, http.MethodGet, "/api/v1/villaAPI", "")
	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	list, ok := decodeEnvelope(t, rec)["result"].([]any)
	if !ok || len(list) != 0 {
		t.Fatalf("expected an empty list result, got %v", list)
	}
}

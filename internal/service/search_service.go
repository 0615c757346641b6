package service

import (
	"context"
	"strings"

	"corp-portal-be/internal/dto"
	"corp-portal-be/internal/repository/contract"
	"corp-portal-be/internal/repository/specification"
)

const searchResultLimit = 20

// SearchResults groups per-module matches for the portal-wide search box.
type SearchResults struct {
	News      []*dto.NewsResponse      `json:"news"`
	Documents []*dto.DocumentResponse  `json:"documents"`
	Knowledge []*dto.KnowledgeResponse `json:"knowledge"`
}

type ISearchService interface {
	SearchNews(ctx context.Context, query string) ([]*dto.NewsResponse, error)
	SearchDocuments(ctx context.Context, query string) ([]*dto.DocumentResponse, error)
	SearchKnowledge(ctx context.Context, query string) ([]*dto.KnowledgeResponse, error)
	Search(ctx context.Context, query string) (*SearchResults, error)
}

type searchService struct {
	newsRepository      contract.NewsRepository
	documentRepository  contract.DocumentRepository
	knowledgeRepository contract.KnowledgeRepository
}

func NewSearchService(
	newsRepository contract.NewsRepository,
	documentRepository contract.DocumentRepository,
	knowledgeRepository contract.KnowledgeRepository,
) ISearchService {
	return &searchService{
		newsRepository:      newsRepository,
		documentRepository:  documentRepository,
		knowledgeRepository: knowledgeRepository,
	}
}

func (s *searchService) SearchNews(ctx context.Context, query string) ([]*dto.NewsResponse, error) {
	results := []*dto.NewsResponse{}
	query = strings.TrimSpace(query)
	if query == "" {
		return results, nil
	}

	news, err := s.newsRepository.FindAll(ctx,
		specification.FieldsContain{Query: query, Columns: []string{"title", "content"}},
		specification.Limit{N: searchResultLimit},
	)
	if err != nil {
		return nil, err
	}
	for _, item := range news {
		results = append(results, toNewsResponse(item))
	}
	return results, nil
}

func (s *searchService) SearchDocuments(ctx context.Context, query string) ([]*dto.DocumentResponse, error) {
	results := []*dto.DocumentResponse{}
	query = strings.TrimSpace(query)
	if query == "" {
		return results, nil
	}

	docs, err := s.documentRepository.FindAll(ctx,
		specification.FieldsContain{Query: query, Columns: []string{"title", "description", "category"}},
		specification.Limit{N: searchResultLimit},
	)
	if err != nil {
		return nil, err
	}
	for _, doc := range docs {
		results = append(results, toDocumentResponse(doc))
	}
	return results, nil
}

func (s *searchService) SearchKnowledge(ctx context.Context, query string) ([]*dto.KnowledgeResponse, error) {
	results := []*dto.KnowledgeResponse{}
	query = strings.TrimSpace(query)
	if query == "" {
		return results, nil
	}

	items, err := s.knowledgeRepository.FindAll(ctx,
		specification.FieldsContain{Query: query, Columns: []string{"title", "content", "category"}},
		specification.Limit{N: searchResultLimit},
	)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		results = append(results, toKnowledgeResponse(item))
	}
	return results, nil
}

func (s *searchService) Search(ctx context.Context, query string) (*SearchResults, error) {
	news, err := s.SearchNews(ctx, query)
	if err != nil {
		return nil, err
	}
	docs, err := s.SearchDocuments(ctx, query)
	if err != nil {
		return nil, err
	}
	knowledge, err := s.SearchKnowledge(ctx, query)
	if err != nil {
		return nil, err
	}
	return &SearchResults{News: news, Documents: docs, Knowledge: knowledge}, nil
}

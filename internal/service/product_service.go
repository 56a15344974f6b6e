package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"strings"

	"ecommerce-backend/internal/model"
	"ecommerce-backend/internal/ports"
	"ecommerce-backend/internal/util"

	"github.com/google/uuid"
)

// ErrProductNotFound : товар с таким UUID отсутствует в каталоге
var ErrProductNotFound = errors.New("товар не найден")

type ProductService struct {
	productRepository ports.ProductRepository
	cacheRepository   ports.CacheRepository
	storageInterface  ports.ObjectStorage
}

func NewProductService(
	productRepository ports.ProductRepository,
	cacheRepository ports.CacheRepository,
	storageInterface ports.ObjectStorage,
) *ProductService {
	return &ProductService{
		productRepository: productRepository,
		cacheRepository:   cacheRepository,
		storageInterface:  storageInterface,
	}
}

func (s *ProductService) GetAllProducts(ctx context.Context) ([]model.Product, error) {
	return s.productRepository.ListAll(ctx)
}

// GetFeaturedProducts : cache-aside через Redis, при промахе читает БД
// и наполняет кэш для последующих запросов
func (s *ProductService) GetFeaturedProducts(ctx context.Context) ([]model.Product, error) {
	products, err := s.cacheRepository.GetFeaturedProducts(ctx)
	if err != nil {
		log.Printf("[ProductService] ошибка чтения кэша: %v", err)
	}
	if products != nil {
		return products, nil
	}

	products, err = s.productRepository.ListFeatured(ctx)
	if err != nil {
		return nil, util.LogError("[ProductService] не удалось получить featured товары", err)
	}

	if err := s.cacheRepository.SetFeaturedProducts(ctx, products); err != nil {
		log.Printf("[ProductService] ошибка наполнения кэша: %v", err)
	}

	return products, nil
}

func (s *ProductService) GetProductsByCategory(ctx context.Context, category string) ([]model.Product, error) {
	return s.productRepository.ListByCategory(ctx, category)
}

func (s *ProductService) GetRecommendedProducts(ctx context.Context) ([]model.Product, error) {
	return s.productRepository.ListRandom(ctx, 4)
}

// CreateProduct : создаёт товар, при наличии изображения (data URL)
// загружает его в S3 под ключом products/<uuid>
func (s *ProductService) CreateProduct(ctx context.Context, product *model.Product, imageDataURL string) (*model.Product, error) {
	product.UUID = uuid.New().String()

	if imageDataURL != "" {
		contentType, data, err := decodeImageDataURL(imageDataURL)
		if err != nil {
			return nil, util.LogError("[ProductService] не удалось декодировать изображение", err)
		}

		imageURL, err := s.storageInterface.UploadObject(ctx, s.imageKey(product.UUID), contentType, data)
		if err != nil {
			return nil, util.LogError("[ProductService] не удалось загрузить изображение", err)
		}
		product.ImageURL = imageURL
	}

	if err := s.productRepository.Create(ctx, product); err != nil {
		return nil, util.LogError("[ProductService] не удалось сохранить товар в БД", err)
	}

	log.Printf("[ProductService] товар %s успешно создан", product.Name)

	return product, nil
}

// DeleteProduct : удаляет товар и его изображение из S3.
// Ошибка удаления изображения не блокирует удаление товара
func (s *ProductService) DeleteProduct(ctx context.Context, productUUID string) error {
	product, err := s.productRepository.GetByUUID(ctx, productUUID)
	if err != nil {
		return util.LogError("[ProductService] ошибка поиска товара", err)
	}
	if product == nil {
		return ErrProductNotFound
	}

	if product.ImageURL != "" {
		if err := s.storageInterface.DeleteObject(ctx, s.imageKey(product.UUID)); err != nil {
			log.Printf("[ProductService] не удалось удалить изображение товара %s: %v", product.UUID, err)
		}
	}

	if err := s.productRepository.Delete(ctx, productUUID); err != nil {
		return util.LogError("[ProductService] не удалось удалить товар", err)
	}

	if err := s.refreshFeaturedCache(ctx); err != nil {
		log.Printf("[ProductService] ошибка обновления кэша: %v", err)
	}

	return nil
}

// ToggleFeaturedProduct : переключает флаг featured и обновляет кэш подборки
func (s *ProductService) ToggleFeaturedProduct(ctx context.Context, productUUID string) (*model.Product, error) {
	product, err := s.productRepository.GetByUUID(ctx, productUUID)
	if err != nil {
		return nil, util.LogError("[ProductService] ошибка поиска товара", err)
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	product.IsFeatured = !product.IsFeatured
	if err := s.productRepository.SetFeatured(ctx, product.UUID, product.IsFeatured); err != nil {
		return nil, util.LogError("[ProductService] не удалось обновить товар", err)
	}

	if err := s.refreshFeaturedCache(ctx); err != nil {
		log.Printf("[ProductService] ошибка обновления кэша: %v", err)
	}

	return product, nil
}

func (s *ProductService) refreshFeaturedCache(ctx context.Context) error {
	products, err := s.productRepository.ListFeatured(ctx)
	if err != nil {
		return err
	}
	return s.cacheRepository.SetFeaturedProducts(ctx, products)
}

func (s *ProductService) imageKey(productUUID string) string {
	return fmt.Sprintf("products/%s", productUUID)
}

// decodeImageDataURL разбирает data URL вида data:image/png;base64,<payload>
func decodeImageDataURL(dataURL string) (string, []byte, error) {
	if !strings.HasPrefix(dataURL, "data:") {
		return "", nil, fmt.Errorf("ожидался data URL")
	}

	meta, payload, found := strings.Cut(strings.TrimPrefix(dataURL, "data:"), ",")
	if !found {
		return "", nil, fmt.Errorf("некорректный data URL")
	}

	contentType, encoding, found := strings.Cut(meta, ";")
	if !found || encoding != "base64" {
		return "", nil, fmt.Errorf("поддерживается только base64 кодирование")
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("ошибка декодирования base64: %w", err)
	}

	return contentType, data, nil
}

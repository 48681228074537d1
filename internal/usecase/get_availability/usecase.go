package get_availability

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	serviceRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/service"
	staffClient "github.com/m04kA/SMC-AvailabilityService/internal/integrations/staffservice"
)

// Результаты обращения к кэшу для метрик
const (
	cacheHit   = "hit"
	cacheMiss  = "miss"
	cacheError = "error"
)

// UseCase use case для получения окна доступности специалиста
type UseCase struct {
	serviceRepo     ServiceRepository
	reservationRepo ReservationRepository
	staffClient     StaffServiceClient
	cache           Cache
	metrics         Metrics
	timeProvider    TimeProvider
	logger          Logger
	defaultDays     int
}

// NewUseCase создает новый экземпляр use case.
// staffClient может быть nil, тогда проверка специалиста пропускается.
func NewUseCase(
	serviceRepo ServiceRepository,
	reservationRepo ReservationRepository,
	staffClient StaffServiceClient,
	cache Cache,
	metrics Metrics,
	logger Logger,
	defaultDays int,
) *UseCase {
	if defaultDays <= 0 || defaultDays > domain.MaxWindowDays {
		defaultDays = domain.DefaultWindowDays
	}

	return &UseCase{
		serviceRepo:     serviceRepo,
		reservationRepo: reservationRepo,
		staffClient:     staffClient,
		cache:           cache,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
		defaultDays:     defaultDays,
	}
}

// Execute выполняет use case получения окна доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	days := req.Days
	if days == 0 {
		days = uc.defaultDays
	}

	y, m, d := req.From.Date()
	from := time.Date(y, m, d, 0, 0, 0, 0, req.From.Location())

	// 2. Пока услуга или специалист не выбраны, показывать нечего
	if req.ServiceID == nil || req.SpecialistID == nil {
		uc.logger.Info("GetAvailability: service or specialist not selected, from=%s", from.Format(domain.DateFormat))
		return &Response{From: from, Days: []availability.DayColumn{}}, nil
	}

	serviceID, specialistID := *req.ServiceID, *req.SpecialistID
	uc.logger.Info("GetAvailability: service=%d, specialist=%d, from=%s, days=%d",
		serviceID, specialistID, from.Format(domain.DateFormat), days)

	// 3. Получаем услугу с расписанием
	service, err := uc.serviceRepo.GetByID(ctx, serviceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailability: service id=%d not found", serviceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailability: failed to get service id=%d: %v", serviceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 4. Проверяем специалиста, если справочник подключен
	if err := uc.checkSpecialist(ctx, specialistID); err != nil {
		return nil, err
	}

	// 5. Получаем бронирования специалиста на период окна
	to := from.AddDate(0, 0, days)
	if sched, ok := availability.ScheduleOf(&service.Schedule); ok && sched.Interval > 0 {
		// последний слот дня может заканчиваться после полуночи
		to = to.Add(time.Duration(sched.Interval) * time.Minute)
	}

	reservations, err := uc.reservationRepo.GetBySpecialistInRange(ctx, specialistID, from, to)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get reservations for specialist=%d: %v", specialistID, err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// 6. Текущее время
	now := uc.timeProvider.Now()

	// 7. Кэш, затем расчет окна
	columns, err := uc.buildWindow(ctx, &service.Schedule, specialistID, reservations, from, days, now)
	if err != nil {
		if errors.Is(err, availability.ErrInvalidInterval) {
			uc.logger.Warn("GetAvailability: service id=%d has invalid schedule: %v", serviceID, err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidServiceConfig, err)
		}
		uc.logger.Error("GetAvailability: failed to build window: %v", err)
		return nil, fmt.Errorf("%w: failed to build window: %v", ErrInternal, err)
	}

	return &Response{From: from, Days: columns}, nil
}

func (uc *UseCase) checkSpecialist(ctx context.Context, specialistID int64) error {
	if uc.staffClient == nil {
		return nil
	}

	_, err := uc.staffClient.GetSpecialistWithGracefulDegradation(ctx, specialistID)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, staffClient.ErrSpecialistNotFound):
		uc.logger.Warn("GetAvailability: specialist id=%d not found", specialistID)
		return ErrSpecialistNotFound
	case errors.Is(err, staffClient.ErrServiceDegraded):
		uc.logger.Warn("GetAvailability: specialist check skipped: %v", err)
		return nil
	default:
		uc.logger.Error("GetAvailability: failed to get specialist id=%d: %v", specialistID, err)
		return fmt.Errorf("%w: failed to get specialist: %v", ErrInternal, err)
	}
}

// buildWindow возвращает окно из кэша или рассчитывает и сохраняет его.
// Ошибки кэша не прерывают запрос.
func (uc *UseCase) buildWindow(
	ctx context.Context,
	schedule *domain.ServiceSchedule,
	specialistID int64,
	reservations []*domain.Reservation,
	from time.Time,
	days int,
	now time.Time,
) ([]availability.DayColumn, error) {
	key := availability.CacheKey(schedule, &specialistID, reservations, from, days, now)

	cached, ok, err := uc.cache.Get(ctx, key)
	switch {
	case err != nil:
		uc.metrics.ObserveCache(cacheError)
		uc.logger.Warn("GetAvailability: cache get failed: %v", err)
	case ok:
		uc.metrics.ObserveCache(cacheHit)
		return cached, nil
	default:
		uc.metrics.ObserveCache(cacheMiss)
	}

	start := time.Now()
	columns, err := availability.BuildWindow(schedule, &specialistID, reservations, from, days, now)
	if err != nil {
		return nil, err
	}
	uc.metrics.ObserveWindowBuild(strconv.Itoa(days), time.Since(start))

	if err := uc.cache.Set(ctx, key, columns); err != nil {
		uc.logger.Warn("GetAvailability: cache set failed: %v", err)
	}

	return columns, nil
}

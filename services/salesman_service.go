package services

import (
	"errors"
	"fmt"
	"time"

	"backend/entity"
	"backend/pkg/apperr"
	"backend/repository"

	"gorm.io/gorm"
)

// SalesmanService covers the field-ops ledger: beats, attendance, visits, and
// the salesman dashboard.
type SalesmanService struct {
	Repo      *repository.SalesmanRepository
	OrderRepo *repository.OrderRepository
}

func NewSalesmanService(repo *repository.SalesmanRepository, orderRepo *repository.OrderRepository) *SalesmanService {
	return &SalesmanService{Repo: repo, OrderRepo: orderRepo}
}

// ----- Beats -----

func (s *SalesmanService) AssignBeat(salesmanID uint, area, city, pincode, beatName string) (*entity.Beat, error) {
	if salesmanID == 0 || area == "" {
		return nil, fmt.Errorf("%w: salesmanId and area are required", apperr.ErrInvalid)
	}
	beat := &entity.Beat{
		SalesmanID: salesmanID,
		Area:       area,
		City:       city,
		Pincode:    pincode,
		BeatName:   beatName,
	}
	if err := s.Repo.CreateBeat(beat); err != nil {
		return nil, err
	}
	return beat, nil
}

func (s *SalesmanService) Beats(salesmanID uint) ([]entity.Beat, error) {
	return s.Repo.ListBeats(salesmanID)
}

// ----- Attendance -----

const dateLayout = "2006-01-02"

// CheckIn creates today's attendance record. The (salesman, date) unique
// index rejects a second check-in, so concurrent calls cannot both succeed.
func (s *SalesmanService) CheckIn(salesmanID uint) (*entity.Attendance, error) {
	now := time.Now()
	record := &entity.Attendance{
		SalesmanID:  salesmanID,
		Date:        now.Format(dateLayout),
		CheckInTime: &now,
	}
	if err := s.Repo.CreateAttendance(record); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: attendance already marked for today", apperr.ErrConflict)
		}
		return nil, err
	}
	return record, nil
}

func (s *SalesmanService) CheckOut(salesmanID uint) (*entity.Attendance, error) {
	today := time.Now().Format(dateLayout)
	record, err := s.Repo.GetAttendance(salesmanID, today)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: no check-in record for today", apperr.ErrInvalid)
		}
		return nil, err
	}
	if record.CheckOutTime != nil {
		return nil, fmt.Errorf("%w: already checked out today", apperr.ErrInvalid)
	}

	now := time.Now()
	record.CheckOutTime = &now
	if err := s.Repo.SaveAttendance(record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *SalesmanService) AllAttendance() ([]entity.Attendance, error) {
	return s.Repo.ListAllAttendance()
}

// ----- Visits -----

func (s *SalesmanService) LogVisit(salesmanID, sellerID uint, beatID *uint, remarks, feedback string) (*entity.Visit, error) {
	if sellerID == 0 {
		return nil, fmt.Errorf("%w: seller ID required", apperr.ErrInvalid)
	}
	visit := &entity.Visit{
		SalesmanID: salesmanID,
		SellerID:   sellerID,
		BeatID:     beatID,
		VisitDate:  time.Now(),
		Remarks:    remarks,
		Feedback:   feedback,
	}
	if err := s.Repo.CreateVisit(visit); err != nil {
		return nil, err
	}
	return visit, nil
}

func (s *SalesmanService) Visits(salesmanID uint) ([]entity.Visit, error) {
	return s.Repo.ListVisits(salesmanID)
}

func (s *SalesmanService) AllVisits() ([]entity.Visit, error) {
	return s.Repo.ListAllVisits()
}

// ----- Dashboard -----

type SalesmanDashboard struct {
	TotalVisits        int64      `json:"totalVisits"`
	TotalStoresCovered int64      `json:"totalStoresCovered"`
	TotalOrders        int64      `json:"totalOrders"`
	AttendanceMarked   bool       `json:"attendanceMarked"`
	CheckInTime        *time.Time `json:"checkInTime"`
	CheckOutTime       *time.Time `json:"checkOutTime"`
}

func (s *SalesmanService) Dashboard(salesmanID uint) (*SalesmanDashboard, error) {
	out := &SalesmanDashboard{}
	var err error

	if out.TotalVisits, err = s.Repo.CountVisits(salesmanID); err != nil {
		return nil, err
	}
	if out.TotalStoresCovered, err = s.Repo.CountDistinctSellersVisited(salesmanID); err != nil {
		return nil, err
	}
	// secondary sales placed by this salesman
	if out.TotalOrders, err = s.OrderRepo.CountBySalesman(salesmanID); err != nil {
		return nil, err
	}

	today := time.Now().Format(dateLayout)
	record, err := s.Repo.GetAttendance(salesmanID, today)
	if err == nil {
		out.AttendanceMarked = true
		out.CheckInTime = record.CheckInTime
		out.CheckOutTime = record.CheckOutTime
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return out, nil
}

package trigdet

import (
	"fmt"
	"strconv"

	_ "github.com/go-sql-driver/mysql"
	sqlx "github.com/jmoiron/sqlx"
)

func ConnectToDatabase(user string, pass string, host string, dbname string) (*sqlx.DB, error) {
	port := "3306"
	dbURI := fmt.Sprintf("%s:%s@(%s:%s)/%s?parseTime=true", user, pass, host, port, dbname)
	db, err := sqlx.Connect("mysql", dbURI)
	return db, err
}

type DetectorParameter struct {
	Name  string `db:"Name"`
	Value string `db:"Value"`
}

type DetectorMapRow struct {
	Address uint32 `db:"Address"`
	Plane   int    `db:"Plane"`
	Counter int    `db:"Counter"`
}

// LoadDatabase reads the channel registry and the detector map valid for a
// given run.
func LoadDatabase(db *sqlx.DB, runNumber int, prefix string, detector string) (ChannelRegistry, *DetectorMap, error) {
	registry, err := getRegistryFromDB(db, runNumber, prefix)
	if err != nil {
		errMessage := fmt.Errorf("error getting channel parameters from database: %w", err)
		logger.Error(errMessage.Error())
		return ChannelRegistry{}, nil, errMessage
	}
	detMap, err := getDetectorMapFromDB(db, runNumber, detector)
	if err != nil {
		errMessage := fmt.Errorf("error getting detector map from database: %w", err)
		logger.Error(errMessage.Error())
		return ChannelRegistry{}, nil, errMessage
	}
	return registry, detMap, nil
}

func getRegistryFromDB(db *sqlx.DB, runNumber int, prefix string) (ChannelRegistry, error) {
	query := "SELECT Name, Value FROM DetectorParameters WHERE Prefix = '%s' AND MinRun <= %d AND MaxRun >= %d"
	query = fmt.Sprintf(query, prefix, runNumber, runNumber)

	if configuration.Verbosity > 0 {
		message := fmt.Sprintf("Reading channel parameters for prefix %s from database", prefix)
		logger.Info(message, "database")
	}
	if configuration.Verbosity > 2 {
		message := fmt.Sprintf("Query: %s", query)
		logger.Info(message, "database")
	}

	rows, err := db.Queryx(query)
	if err != nil {
		return ChannelRegistry{}, fmt.Errorf("error querying database: %w", err)
	}

	params := make(map[string]string)
	for rows.Next() {
		result := DetectorParameter{}
		if err := rows.StructScan(&result); err != nil {
			return ChannelRegistry{}, fmt.Errorf("error scanning DB row: %w", err)
		}
		params[result.Name] = result.Value
	}

	for _, key := range []string{"_numAdc", "_numTdc", "_adcNames", "_tdcNames"} {
		if _, ok := params[key]; !ok {
			message := fmt.Sprintf("missing parameter %s%s for run %d", prefix, key, runNumber)
			return ChannelRegistry{}, &ErrConfiguration{Message: message}
		}
	}
	numAdc, err := strconv.Atoi(params["_numAdc"])
	if err != nil {
		message := fmt.Sprintf("%s_numAdc is not an integer: %q", prefix, params["_numAdc"])
		return ChannelRegistry{}, &ErrConfiguration{Message: message}
	}
	numTdc, err := strconv.Atoi(params["_numTdc"])
	if err != nil {
		message := fmt.Sprintf("%s_numTdc is not an integer: %q", prefix, params["_numTdc"])
		return ChannelRegistry{}, &ErrConfiguration{Message: message}
	}

	return NewChannelRegistry(numAdc, numTdc, params["_adcNames"], params["_tdcNames"])
}

func getDetectorMapFromDB(db *sqlx.DB, runNumber int, detector string) (*DetectorMap, error) {
	query := "SELECT Address, Plane, Counter FROM DetectorMap WHERE Detector = '%s' AND MinRun <= %d AND MaxRun >= %d ORDER BY Plane, Counter"
	query = fmt.Sprintf(query, detector, runNumber, runNumber)

	if configuration.Verbosity > 0 {
		message := fmt.Sprintf("Reading detector map for %s from database", detector)
		logger.Info(message, "database")
	}
	if configuration.Verbosity > 2 {
		message := fmt.Sprintf("Query: %s", query)
		logger.Info(message, "database")
	}

	rows, err := db.Queryx(query)
	if err != nil {
		return nil, fmt.Errorf("error querying database: %w", err)
	}

	detMap := NewDetectorMap(detector)
	for rows.Next() {
		result := DetectorMapRow{}
		if err := rows.StructScan(&result); err != nil {
			return nil, fmt.Errorf("error scanning DB row: %w", err)
		}
		detMap.Add(result.Address, result.Plane, result.Counter)
	}

	if detMap.Size() == 0 {
		message := fmt.Sprintf("no detector map entries for %s in run %d", detector, runNumber)
		return nil, &ErrConfiguration{Message: message}
	}
	return detMap, nil
}

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	trigdet "github.com/hallc-daq/trigdec/pkg"
)

var configuration trigdet.Configuration

var (
	logger         Logger
	VerbosityLevel int
	DiscardErrors  bool
)

func init() {
	logger = NewLogger()
}

func main() {
	configFilename := flag.String("config", "", "Configuration file path")
	flag.Parse()

	var err error
	configuration, err = LoadConfiguration(*configFilename)
	if err != nil {
		message := fmt.Errorf("Error reading configuration file: %w", err)
		logger.Error(message.Error())
		return
	}
	trigdet.SetConfiguration(configuration)
	trigdet.SetLogger(logger)

	VerbosityLevel = configuration.Verbosity
	DiscardErrors = configuration.Discard
	if VerbosityLevel > 0 {
		message := fmt.Sprintf("Reading configuration file: %s", *configFilename)
		logger.Info(message, "main")
		printConfiguration(configuration, logger)
	}

	file, err := os.Open(configuration.FileIn)
	if err != nil {
		message := fmt.Errorf("Error opening file: %w", err)
		logger.Error(message.Error())
		return
	}
	defer file.Close()

	evtCount, runNumber := countEvents(file)
	if VerbosityLevel > 0 {
		message := fmt.Sprintf("Number of events: %d. Run number: %d", evtCount, runNumber)
		logger.Info(message, "main")
	}

	registry, detMap, err := loadRunConfiguration(runNumber)
	if err != nil {
		logger.Error(err.Error())
		return
	}

	det := trigdet.NewTrigDet(configuration.Detector)
	if err := det.Configure(registry, detMap); err != nil {
		logger.Error(err.Error())
		return
	}
	vars, err := det.BindVariables()
	if err != nil {
		logger.Error(err.Error())
		return
	}
	if VerbosityLevel > 0 {
		message := fmt.Sprintf("Defined %d variables for %s", len(vars), det.Name)
		logger.Info(message, "main")
	}

	fileReader := NewFileReader(file)
	evtsProcessed := 0
	evtsDiscarded := 0
	for {
		header, eventData, err := fileReader.getNextEvent()
		if err != nil {
			if err != io.EOF {
				message := fmt.Errorf("error reading event: %w", err)
				logger.Error(message.Error())
			}
			break
		}
		if err := processEvent(det, header, eventData); err != nil {
			evtsDiscarded++
			continue
		}
		evtsProcessed++
		if VerbosityLevel > 1 {
			dumpVariables(det, header)
		}
	}

	message := fmt.Sprintf("Events processed: %d. Events discarded: %d", evtsProcessed, evtsDiscarded)
	logger.Info(message, "main")
}

func loadRunConfiguration(runNumber int) (trigdet.ChannelRegistry, *trigdet.DetectorMap, error) {
	if configuration.NoDB {
		registry, err := trigdet.NewChannelRegistry(configuration.NumAdc, configuration.NumTdc,
			configuration.AdcNames, configuration.TdcNames)
		if err != nil {
			return trigdet.ChannelRegistry{}, nil, err
		}
		detMap, err := trigdet.LoadMapFile(configuration.MapFile, configuration.Detector)
		if err != nil {
			return trigdet.ChannelRegistry{}, nil, err
		}
		return registry, detMap, nil
	}

	dbConn, err := trigdet.ConnectToDatabase(configuration.User, configuration.Passwd,
		configuration.Host, configuration.DBName)
	if err != nil {
		message := fmt.Errorf("Error connecting to database: %w", err)
		return trigdet.ChannelRegistry{}, nil, message
	}
	defer dbConn.Close()

	return trigdet.LoadDatabase(dbConn, runNumber, configuration.Prefix, configuration.Detector)
}

func processEvent(det *trigdet.TrigDet, header trigdet.EventHeaderStruct, eventData []byte) error {
	if err := det.ResetForEvent(); err != nil {
		logger.Error(err.Error())
		return err
	}

	nHits, err := det.Decode(header, eventData)
	if err != nil {
		message := fmt.Errorf("error decoding event %d: %w", header.EventId, err)
		logger.Error(message.Error())

		// An unknown kind or a bad counter aborts the rest of this event
		// only; the run goes on with the next one.
		var unknownKind *trigdet.ErrUnknownChannelKind
		var outOfRange *trigdet.ErrChannelOutOfRange
		if errors.As(err, &unknownKind) || errors.As(err, &outOfRange) {
			if DiscardErrors {
				message := fmt.Sprintf("discarding event %d", header.EventId)
				logger.Error(message)
				return err
			}
			return nil
		}
		return err
	}

	if VerbosityLevel > 1 {
		message := fmt.Sprintf("Event %d decoded with %d hits", header.EventId, nHits)
		logger.Info(message, "main")
	}
	return nil
}

func dumpVariables(det *trigdet.TrigDet, header trigdet.EventHeaderStruct) {
	for _, name := range det.VariableNames() {
		value, _ := det.VariableByName(name)
		message := fmt.Sprintf("Event %d: %s = %g", header.EventId, name, *value)
		logger.Info(message, "variables")
	}
}
